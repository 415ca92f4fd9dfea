package postgres

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
)

type WorkOrderRepo struct {
	db *bun.DB
}

func NewWorkOrderRepo(db *bun.DB) *WorkOrderRepo {
	return &WorkOrderRepo{db: db}
}

func (r *WorkOrderRepo) ListOccupying(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.WorkOrder, error) {
	var rows []domain.WorkOrder
	err := r.db.NewSelect().
		Model(&rows).
		Where("start_at < ?", windowEnd).
		Where("end_at > ?", windowStart).
		Where("status IN (?)", bun.In([]domain.WorkOrderStatus{
			domain.WorkOrderStatusAssigned,
			domain.WorkOrderStatusInProgress,
			domain.WorkOrderStatusWaiting,
		})).
		OrderExpr("start_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
