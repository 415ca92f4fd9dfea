package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/store"
)

type SettingsRepo struct {
	db *bun.DB
}

func NewSettingsRepo(db *bun.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns the shop's single settings row. The table is expected to hold
// exactly one row; the oldest wins if it somehow holds more.
func (r *SettingsRepo) Get(ctx context.Context) (domain.ShopSettings, error) {
	var s domain.ShopSettings
	err := r.db.NewSelect().
		Model(&s).
		OrderExpr("created_at ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ShopSettings{}, store.ErrNotFound
		}
		return domain.ShopSettings{}, err
	}
	return s, nil
}
