package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "OPEN"
	WorkOrderStatusAssigned   WorkOrderStatus = "ASSIGNED"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusWaiting    WorkOrderStatus = "WAITING"
	WorkOrderStatusDone       WorkOrderStatus = "DONE"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

// WorkOrder ties an employee to a booking's time window. StartAt/EndAt are
// denormalized from the booking so availability checks need no join.
type WorkOrder struct {
	bun.BaseModel `bun:"table:work_orders"`

	ID         uuid.UUID       `bun:"id,pk,type:uuid"`
	BookingID  uuid.UUID       `bun:"booking_id,notnull,type:uuid"`
	EmployeeID uuid.UUID       `bun:"employee_id,notnull,type:uuid"`
	StartAt    time.Time       `bun:"start_at,notnull"`
	EndAt      time.Time       `bun:"end_at,notnull"`
	Status     WorkOrderStatus `bun:"status,notnull"`
	CreatedAt  time.Time       `bun:"created_at,notnull"`
	UpdatedAt  time.Time       `bun:"updated_at,notnull"`
}

// Occupying reports whether the work order keeps its employee busy.
func (w WorkOrder) Occupying() bool {
	switch w.Status {
	case WorkOrderStatusAssigned, WorkOrderStatusInProgress, WorkOrderStatusWaiting:
		return true
	}
	return false
}

func (w *WorkOrder) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if w.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			w.ID = id
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = now
		}
		if w.UpdatedAt.IsZero() {
			w.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		w.UpdatedAt = now
	}
	return nil
}
