package postgres

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
)

type EmployeeRepo struct {
	db *bun.DB
}

func NewEmployeeRepo(db *bun.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) ListActive(ctx context.Context) ([]domain.Employee, error) {
	var rows []domain.Employee
	err := r.db.NewSelect().
		Model(&rows).
		Where("active").
		OrderExpr("full_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
