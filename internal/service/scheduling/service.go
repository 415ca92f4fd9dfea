// Package scheduling orchestrates the slot and availability resolvers over
// the persistence layer: it fetches the snapshots the pure core needs and
// funnels writes through the transactional capacity check.
package scheduling

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/schedule"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/store"
)

const maxBookingDuration = 24 * time.Hour

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type Service struct {
	settings   store.SettingsRepository
	bookings   store.BookingRepository
	employees  store.EmployeeRepository
	workOrders store.WorkOrderRepository
	resolver   *schedule.Resolver
}

func NewService(
	settings store.SettingsRepository,
	bookings store.BookingRepository,
	employees store.EmployeeRepository,
	workOrders store.WorkOrderRepository,
	resolver *schedule.Resolver,
) *Service {
	return &Service{
		settings:   settings,
		bookings:   bookings,
		employees:  employees,
		workOrders: workOrders,
		resolver:   resolver,
	}
}

// businessHours loads the singleton settings row. A missing row is a
// deployment bug, not a caller error.
func (s *Service) businessHours(ctx context.Context) (schedule.BusinessHours, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return schedule.BusinessHours{}, schedule.NewConfigurationError("shop settings are not configured")
		}
		return schedule.BusinessHours{}, err
	}
	return schedule.BusinessHours{
		Timezone:             settings.Timezone,
		OpenTime:             settings.OpenTime,
		CloseTime:            settings.CloseTime,
		SlotMinutes:          settings.SlotMinutes,
		BufferMinutes:        settings.BufferMinutes,
		SlotCapacity:         settings.SlotCapacity,
		AllowCustomerBooking: settings.AllowCustomerBooking,
	}, nil
}

// Slots returns the bookable slots for a calendar date with remaining
// capacity. Full slots are included with capacity 0.
func (s *Service) Slots(ctx context.Context, date string) ([]schedule.Slot, error) {
	hours, err := s.businessHours(ctx)
	if err != nil {
		return nil, err
	}

	open, close, err := schedule.DayBounds(date, hours)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListForWindow(ctx, open, close)
	if err != nil {
		return nil, err
	}

	return s.resolver.ResolveSlots(date, hours, bookings)
}

// Availability partitions the active roster into available and busy employees
// for the window [start, start+durationMinutes).
func (s *Service) Availability(ctx context.Context, start time.Time, durationMinutes int) (schedule.Availability, error) {
	if start.IsZero() {
		return schedule.Availability{}, schedule.NewInvalidIntervalError("start is required")
	}
	if durationMinutes <= 0 {
		return schedule.Availability{}, schedule.NewInvalidIntervalError("duration must be positive")
	}

	windowStart := start.UTC()
	windowEnd := windowStart.Add(time.Duration(durationMinutes) * time.Minute)

	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return schedule.Availability{}, err
	}
	orders, err := s.workOrders.ListOccupying(ctx, windowStart, windowEnd)
	if err != nil {
		return schedule.Availability{}, err
	}

	return s.resolver.ResolveAvailability(windowStart, durationMinutes, employees, orders)
}

type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string
	VehiclePlate  string
	Notes         string
	StartAt       time.Time
	EndAt         time.Time
	BookingType   domain.BookingType
	// CustomerRequested marks bookings from the public form, which the
	// AllowCustomerBooking gate can switch off.
	CustomerRequested bool
}

// CreateBooking validates the request against the configured business day and
// inserts it through the transactional capacity check. Walk-ins must land
// exactly on a generated slot; pre-bookings only need to fit inside the day.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.Booking, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return domain.Booking{}, validationError("customer_name is required")
	}

	bookingType := in.BookingType
	if bookingType == "" {
		bookingType = domain.BookingTypeWalkIn
	}
	if bookingType != domain.BookingTypeWalkIn && bookingType != domain.BookingTypePreBooking {
		return domain.Booking{}, validationError("booking_type must be WALKIN or PREBOOKING")
	}

	start := in.StartAt.UTC()
	end := in.EndAt.UTC()
	if start.IsZero() || end.IsZero() {
		return domain.Booking{}, validationError("start_at and end_at are required")
	}
	if !end.After(start) {
		return domain.Booking{}, validationError("end_at must be after start_at")
	}
	if end.Sub(start) > maxBookingDuration {
		return domain.Booking{}, validationError("duration too long")
	}

	hours, err := s.businessHours(ctx)
	if err != nil {
		return domain.Booking{}, err
	}
	if in.CustomerRequested && !hours.AllowCustomerBooking {
		return domain.Booking{}, validationError("online booking is currently disabled")
	}

	if err := s.checkWithinBusinessDay(start, end, bookingType, hours); err != nil {
		return domain.Booking{}, err
	}

	booking := domain.Booking{
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		VehiclePlate:  strings.TrimSpace(in.VehiclePlate),
		Notes:         in.Notes,
		StartAt:       start,
		EndAt:         end,
		Status:        domain.BookingStatusPending,
		BookingType:   bookingType,
	}

	return s.bookings.Create(ctx, booking, hours.SlotCapacity)
}

func (s *Service) checkWithinBusinessDay(start, end time.Time, bookingType domain.BookingType, hours schedule.BusinessHours) error {
	loc, err := time.LoadLocation(strings.TrimSpace(hours.Timezone))
	if err != nil {
		return schedule.NewConfigurationError("invalid timezone")
	}
	date := start.In(loc).Format("2006-01-02")

	open, close, err := schedule.DayBounds(date, hours)
	if err != nil {
		return err
	}
	if start.Before(open) || end.After(close) {
		return validationError("booking must be within business hours")
	}

	if bookingType != domain.BookingTypeWalkIn {
		return nil
	}

	// Walk-ins book whole slots; an unaligned window would dodge the
	// capacity model.
	slots, err := s.resolver.ResolveSlots(date, hours, nil)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if slot.Start.Equal(start) && slot.End.Equal(end) {
			return nil
		}
	}
	return validationError("booking must match a bookable slot")
}

// AcceptBooking confirms a pending booking.
func (s *Service) AcceptBooking(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	if id == uuid.Nil {
		return domain.Booking{}, validationError("booking_id is required")
	}
	return s.bookings.Transition(ctx, id, domain.BookingStatusPending, domain.BookingStatusAccepted)
}

// CancelBooking cancels a pending or accepted booking; finished and already
// cancelled bookings cannot be cancelled.
func (s *Service) CancelBooking(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	if id == uuid.Nil {
		return domain.Booking{}, validationError("booking_id is required")
	}

	current, err := s.bookings.Get(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	switch current.Status {
	case domain.BookingStatusPending, domain.BookingStatusAccepted:
		return s.bookings.Transition(ctx, id, current.Status, domain.BookingStatusCancelled)
	default:
		return domain.Booking{}, store.ErrConflict
	}
}

// BookingsForDate lists every booking intersecting the business day, newest
// status included, for the schedule screen.
func (s *Service) BookingsForDate(ctx context.Context, date string) ([]domain.Booking, error) {
	hours, err := s.businessHours(ctx)
	if err != nil {
		return nil, err
	}
	open, close, err := schedule.DayBounds(date, hours)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListForWindow(ctx, open, close)
}
