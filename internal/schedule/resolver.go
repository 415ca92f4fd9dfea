// Package schedule is the garage's slot and employee-availability engine.
// Both resolvers are pure functions over caller-supplied snapshots; fetching
// bookings and work orders, and closing the check-then-book race at the
// persistence layer, is the caller's job.
package schedule

import "log/slog"

type Resolver struct {
	log *slog.Logger
}

func NewResolver(log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{log: log.With(slog.String("component", "schedule"))}
}
