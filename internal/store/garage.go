package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
)

// SettingsRepository exposes the singleton business-hours row.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.ShopSettings, error)
}

type BookingRepository interface {
	// Create inserts the booking only if its window still has capacity,
	// re-checked inside the same transaction that writes the row. Returns
	// ErrSlotFull when the window is taken.
	Create(ctx context.Context, b domain.Booking, slotCapacity int) (domain.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	ListForWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Booking, error)
	// Transition updates the status only when the booking is currently in
	// from; returns ErrConflict if it exists in another status.
	Transition(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) (domain.Booking, error)
	// FinishElapsed marks accepted bookings whose end has passed as done
	// and returns how many rows changed.
	FinishElapsed(ctx context.Context, now time.Time) (int64, error)
}

type WorkOrderRepository interface {
	// ListOccupying returns work orders in an occupying status whose window
	// intersects [windowStart, windowEnd).
	ListOccupying(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.WorkOrder, error)
}

type EmployeeRepository interface {
	ListActive(ctx context.Context) ([]domain.Employee, error)
}
