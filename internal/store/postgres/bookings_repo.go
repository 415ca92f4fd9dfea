package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
	"github.com/hamzaj-b/RBU-Autos-sub000/internal/store"
)

type BookingRepo struct {
	db *bun.DB
}

func NewBookingRepo(db *bun.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

type bookingTx struct {
	tx bun.Tx
}

// Create re-validates slot capacity and inserts the booking inside one
// transaction, serialized per shop by an advisory lock. This is the
// check-and-insert that closes the race between reading slots and booking one.
func (r *BookingRepo) Create(ctx context.Context, b domain.Booking, slotCapacity int) (domain.Booking, error) {
	var out domain.Booking
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockShopCalendar(ctx, tx); err != nil {
			return err
		}
		btx := bookingTx{tx: tx}
		if err := store.EnsureSlotCapacity(ctx, btx, b, slotCapacity); err != nil {
			return err
		}
		created, err := btx.InsertBooking(ctx, b)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return out, nil
}

// lockShopCalendar takes a transaction-scoped advisory lock so concurrent
// booking attempts for the single-location shop are serialized.
func lockShopCalendar(ctx context.Context, tx bun.Tx) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", "shop_calendar").Exec(ctx)
	return err
}

func (t bookingTx) CountActiveOverlapping(ctx context.Context, windowStart, windowEnd time.Time) (int, error) {
	return t.tx.NewSelect().
		Model((*domain.Booking)(nil)).
		Where("start_at < ?", windowEnd).
		Where("end_at > ?", windowStart).
		Where("status NOT IN (?)", bun.In([]domain.BookingStatus{
			domain.BookingStatusCancelled,
			domain.BookingStatusDone,
		})).
		Count(ctx)
}

func (t bookingTx) InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	m := b
	if _, err := t.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Booking{}, err
	}
	return m, nil
}

func (r *BookingRepo) Get(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.NewSelect().
		Model(&b).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Booking{}, store.ErrNotFound
		}
		return domain.Booking{}, err
	}
	return b, nil
}

func (r *BookingRepo) ListForWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Booking, error) {
	var rows []domain.Booking
	err := r.db.NewSelect().
		Model(&rows).
		Where("start_at < ?", windowEnd).
		Where("end_at > ?", windowStart).
		OrderExpr("start_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingRepo) Transition(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) (domain.Booking, error) {
	res, err := r.db.NewUpdate().
		Model((*domain.Booking)(nil)).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("status = ?", from).
		Exec(ctx)
	if err != nil {
		return domain.Booking{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Booking{}, err
	}
	if affected == 0 {
		// Distinguish a missing booking from one in the wrong state.
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return domain.Booking{}, getErr
		}
		return domain.Booking{}, store.ErrConflict
	}
	return r.Get(ctx, id)
}

func (r *BookingRepo) FinishElapsed(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*domain.Booking)(nil)).
		Set("status = ?", domain.BookingStatusDone).
		Set("updated_at = ?", now.UTC()).
		Where("status = ?", domain.BookingStatusAccepted).
		Where("end_at < ?", now.UTC()).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
