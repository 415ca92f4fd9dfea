package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/schedule"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/service/scheduling"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeServiceError maps errors crossing the service boundary onto status
// codes. Configuration problems stay out of responses; callers get a generic
// 500 and the detail goes to the log.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var cfgErr *schedule.ConfigurationError
	if errors.As(err, &cfgErr) {
		log.Error("scheduling misconfigured", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "scheduling is not configured")
		return
	}

	var dateErr *schedule.InvalidDateError
	if errors.As(err, &dateErr) {
		writeError(w, http.StatusBadRequest, dateErr.Error())
		return
	}
	var intervalErr *schedule.InvalidIntervalError
	if errors.As(err, &intervalErr) {
		writeError(w, http.StatusBadRequest, intervalErr.Error())
		return
	}
	var vErr *scheduling.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, store.ErrSlotFull):
		writeError(w, http.StatusConflict, "slot is fully booked")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "booking not found")
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, "booking is not in a state that allows this change")
	default:
		log.Error("request failed", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

type slotResponse struct {
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	Capacity int       `json:"capacity"`
}

type employeeResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
}

type busyEmployeeResponse struct {
	employeeResponse
	BusyUntil time.Time `json:"busy_until"`
}

type availabilityResponse struct {
	Available []employeeResponse     `json:"available"`
	Busy      []busyEmployeeResponse `json:"busy"`
}

type bookingResponse struct {
	ID            uuid.UUID            `json:"id"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone,omitempty"`
	VehiclePlate  string               `json:"vehicle_plate,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	StartAt       time.Time            `json:"start_at"`
	EndAt         time.Time            `json:"end_at"`
	Status        domain.BookingStatus `json:"status"`
	BookingType   domain.BookingType   `json:"booking_type"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func toEmployeeResponse(e domain.Employee) employeeResponse {
	return employeeResponse{ID: e.ID, FullName: e.FullName, Phone: e.Phone}
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		VehiclePlate:  b.VehiclePlate,
		Notes:         b.Notes,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		Status:        b.Status,
		BookingType:   b.BookingType,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSlots handles GET /api/schedule/slots?date=YYYY-MM-DD.
func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "Slots"))

	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}

	slots, err := s.svc.Slots(r.Context(), date)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]slotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slotResponse{StartAt: slot.Start, EndAt: slot.End, Capacity: slot.Capacity})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleAvailability handles
// GET /api/schedule/availability?start=RFC3339&duration_minutes=N.
func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "Availability"))

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be an RFC 3339 timestamp")
		return
	}
	duration, err := strconv.Atoi(r.URL.Query().Get("duration_minutes"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "duration_minutes must be an integer")
		return
	}

	availability, err := s.svc.Availability(r.Context(), start, duration)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := availabilityResponse{
		Available: make([]employeeResponse, 0, len(availability.Available)),
		Busy:      make([]busyEmployeeResponse, 0, len(availability.Busy)),
	}
	for _, e := range availability.Available {
		out.Available = append(out.Available, toEmployeeResponse(e))
	}
	for _, b := range availability.Busy {
		out.Busy = append(out.Busy, busyEmployeeResponse{
			employeeResponse: toEmployeeResponse(b.Employee),
			BusyUntil:        b.BusyUntil,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type createBookingRequest struct {
	CustomerName      string    `json:"customer_name" validate:"required"`
	CustomerPhone     string    `json:"customer_phone"`
	VehiclePlate      string    `json:"vehicle_plate"`
	Notes             string    `json:"notes"`
	StartAt           time.Time `json:"start_at" validate:"required"`
	EndAt             time.Time `json:"end_at" validate:"required"`
	BookingType       string    `json:"booking_type" validate:"omitempty,oneof=WALKIN PREBOOKING"`
	CustomerRequested bool      `json:"customer_requested"`
}

// handleCreateBooking handles POST /api/bookings.
func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "CreateBooking"))

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			writeError(w, http.StatusBadRequest, "invalid field: "+fieldErrs[0].Field())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := s.svc.CreateBooking(r.Context(), scheduling.CreateBookingInput{
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		VehiclePlate:      req.VehiclePlate,
		Notes:             req.Notes,
		StartAt:           req.StartAt,
		EndAt:             req.EndAt,
		BookingType:       domain.BookingType(req.BookingType),
		CustomerRequested: req.CustomerRequested,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info(
		"booking created",
		slog.String("booking_id", booking.ID.String()),
		slog.Time("start_at", booking.StartAt),
		slog.Time("end_at", booking.EndAt),
		slog.String("booking_type", string(booking.BookingType)),
	)
	writeJSON(w, http.StatusCreated, toBookingResponse(booking))
}

// handleListBookings handles GET /api/bookings?date=YYYY-MM-DD.
func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "ListBookings"))

	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}

	bookings, err := s.svc.BookingsForDate(r.Context(), date)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleAcceptBooking handles POST /api/bookings/{id}/accept.
func (s *Server) handleAcceptBooking(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "AcceptBooking"))

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	booking, err := s.svc.AcceptBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("booking accepted", slog.String("booking_id", booking.ID.String()))
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

// handleCancelBooking handles POST /api/bookings/{id}/cancel.
func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "CancelBooking"))

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	booking, err := s.svc.CancelBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("booking cancelled", slog.String("booking_id", booking.ID.String()))
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}
