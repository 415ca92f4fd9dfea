package store

import (
	"context"
	"time"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
)

// BookingTx is the slice of a booking transaction the capacity check needs.
type BookingTx interface {
	CountActiveOverlapping(ctx context.Context, windowStart, windowEnd time.Time) (int, error)
	InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error)
}

// EnsureSlotCapacity returns ErrSlotFull when the booking's window already
// holds slotCapacity capacity-consuming bookings. Must run inside the same
// transaction that inserts the booking, under the calendar lock, or two
// callers acting on stale snapshots can both pass the check.
func EnsureSlotCapacity(ctx context.Context, tx BookingTx, b domain.Booking, slotCapacity int) error {
	if slotCapacity <= 0 {
		slotCapacity = 1
	}
	taken, err := tx.CountActiveOverlapping(ctx, b.StartAt, b.EndAt)
	if err != nil {
		return err
	}
	if taken >= slotCapacity {
		return ErrSlotFull
	}
	return nil
}
