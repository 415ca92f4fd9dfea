// Package jobs runs the background maintenance work the API does not do
// inline, currently the sweep that finishes elapsed bookings.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// BookingFinisher is the slice of the booking store the sweeper needs.
type BookingFinisher interface {
	FinishElapsed(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically marks accepted bookings whose end time has passed as
// done, so stale rows stop consuming slot capacity.
type Sweeper struct {
	bookings BookingFinisher
	spec     string
	log      *slog.Logger
	cron     *cron.Cron
}

func NewSweeper(bookings BookingFinisher, spec string, log *slog.Logger) *Sweeper {
	if log == nil {
		log = slog.Default()
	}
	return &Sweeper{
		bookings: bookings,
		spec:     spec,
		log:      log.With(slog.String("component", "sweeper")),
		cron:     cron.New(),
	}
}

// Run performs a single sweep. It is called by the cron schedule and can be
// invoked directly, e.g. once at startup.
func (s *Sweeper) Run(ctx context.Context) error {
	n, err := s.bookings.FinishElapsed(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error("finishing elapsed bookings failed", slog.Any("err", err))
		return err
	}
	if n > 0 {
		s.log.Info("finished elapsed bookings", slog.Int64("count", n))
	}
	return nil
}

// Start registers the sweep on the cron schedule and starts it. The returned
// error only reports an unparsable spec.
func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		_ = s.Run(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("sweeper started", slog.String("spec", s.spec))
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("sweeper stopped")
}
