package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ShopSettings is the single business-hours configuration row for the garage.
// Open/close times are local wall-clock "HH:mm" strings interpreted in Timezone;
// validation happens in the schedule package when the values are used.
type ShopSettings struct {
	bun.BaseModel `bun:"table:shop_settings"`

	ID                   uuid.UUID `bun:"id,pk,type:uuid"`
	Timezone             string    `bun:"timezone,notnull"`
	OpenTime             string    `bun:"open_time,notnull"`
	CloseTime            string    `bun:"close_time,notnull"`
	SlotMinutes          int       `bun:"slot_minutes,notnull"`
	BufferMinutes        int       `bun:"buffer_minutes,notnull"`
	SlotCapacity         int       `bun:"slot_capacity,notnull"`
	AllowCustomerBooking bool      `bun:"allow_customer_booking,notnull"`
	CreatedAt            time.Time `bun:"created_at,notnull"`
	UpdatedAt            time.Time `bun:"updated_at,notnull"`
}

func (s *ShopSettings) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if s.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			s.ID = id
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		s.UpdatedAt = now
	}
	return nil
}
