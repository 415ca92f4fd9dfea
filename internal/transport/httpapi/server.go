// Package httpapi exposes the scheduling service over HTTP. Handlers
// translate requests and responses and map service errors onto status codes;
// all business rules live below this layer.
package httpapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/schedule"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/service/scheduling"
)

type schedulingService interface {
	Slots(ctx context.Context, date string) ([]schedule.Slot, error)
	Availability(ctx context.Context, start time.Time, durationMinutes int) (schedule.Availability, error)
	CreateBooking(ctx context.Context, in scheduling.CreateBookingInput) (domain.Booking, error)
	AcceptBooking(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	BookingsForDate(ctx context.Context, date string) ([]domain.Booking, error)
}

type Server struct {
	svc            schedulingService
	validate       *validator.Validate
	log            *slog.Logger
	requestTimeout time.Duration
}

func NewServer(svc schedulingService, log *slog.Logger, requestTimeout time.Duration) *Server {
	if log == nil {
		log = slog.Default()
	}
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	return &Server{
		svc:            svc,
		validate:       validator.New(),
		log:            log.With(slog.String("component", "httpapi")),
		requestTimeout: requestTimeout,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(s.requestTimeout))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/schedule/slots", s.handleSlots)
		r.Get("/schedule/availability", s.handleAvailability)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", s.handleCreateBooking)
			r.Get("/", s.handleListBookings)
			r.Post("/{id}/accept", s.handleAcceptBooking)
			r.Post("/{id}/cancel", s.handleCancelBooking)
		})
	})

	return r
}
