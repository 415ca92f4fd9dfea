package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusDone      BookingStatus = "DONE"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type BookingType string

const (
	BookingTypeWalkIn     BookingType = "WALKIN"
	BookingTypePreBooking BookingType = "PREBOOKING"
)

type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID            uuid.UUID     `bun:"id,pk,type:uuid"`
	CustomerName  string        `bun:"customer_name,notnull"`
	CustomerPhone string        `bun:"customer_phone"`
	VehiclePlate  string        `bun:"vehicle_plate"`
	Notes         string        `bun:"notes"`
	StartAt       time.Time     `bun:"start_at,notnull"`
	EndAt         time.Time     `bun:"end_at,notnull"`
	Status        BookingStatus `bun:"status,notnull"`
	BookingType   BookingType   `bun:"booking_type,notnull"`
	CreatedAt     time.Time     `bun:"created_at,notnull"`
	UpdatedAt     time.Time     `bun:"updated_at,notnull"`
}

// CountsAgainstCapacity reports whether the booking still consumes a slot.
// Cancelled and finished bookings free their slot.
func (b Booking) CountsAgainstCapacity() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusDone
}

func (b *Booking) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if b.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			b.ID = id
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		if b.UpdatedAt.IsZero() {
			b.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		b.UpdatedAt = now
	}
	return nil
}
