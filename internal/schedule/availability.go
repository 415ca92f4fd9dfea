package schedule

import (
	"log/slog"
	"sort"
	"time"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
)

// BusyEmployee is an employee with at least one occupying work order that
// overlaps the requested window. BusyUntil is the latest end among the
// conflicting orders, so callers can show when the employee frees up.
type BusyEmployee struct {
	Employee  domain.Employee
	BusyUntil time.Time
}

// Availability partitions a roster: every employee in the input appears in
// exactly one of the two lists, each sorted by full name.
type Availability struct {
	Available []domain.Employee
	Busy      []BusyEmployee
}

// ResolveAvailability splits the roster into available and busy employees for
// the window [start, start+duration). Only occupying work orders (assigned,
// in progress, waiting) conflict; touching windows do not.
//
// A work order with a malformed interval is skipped with a warning rather
// than failing the whole computation.
func (r *Resolver) ResolveAvailability(start time.Time, durationMinutes int, employees []domain.Employee, orders []domain.WorkOrder) (Availability, error) {
	if start.IsZero() {
		return Availability{}, invalidIntervalError("start is required")
	}
	if durationMinutes <= 0 {
		return Availability{}, invalidIntervalError("duration must be positive")
	}

	requested := Interval{
		Start: start.UTC(),
		End:   start.UTC().Add(time.Duration(durationMinutes) * time.Minute),
	}

	busyUntil := make(map[string]time.Time, len(employees))
	for _, o := range orders {
		if !o.Occupying() {
			continue
		}
		occupied := Interval{Start: o.StartAt, End: o.EndAt}
		if !occupied.Valid() {
			r.log.Warn(
				"skipping work order with malformed interval",
				slog.String("work_order_id", o.ID.String()),
				slog.String("employee_id", o.EmployeeID.String()),
			)
			continue
		}
		if !Overlaps(requested, occupied) {
			continue
		}
		key := o.EmployeeID.String()
		if until, ok := busyUntil[key]; !ok || occupied.End.After(until) {
			busyUntil[key] = occupied.End
		}
	}

	out := Availability{
		Available: make([]domain.Employee, 0, len(employees)),
		Busy:      make([]BusyEmployee, 0),
	}
	for _, e := range employees {
		if until, ok := busyUntil[e.ID.String()]; ok {
			out.Busy = append(out.Busy, BusyEmployee{Employee: e, BusyUntil: until})
			continue
		}
		out.Available = append(out.Available, e)
	}

	sort.Slice(out.Available, func(i, j int) bool {
		return out.Available[i].FullName < out.Available[j].FullName
	})
	sort.Slice(out.Busy, func(i, j int) bool {
		return out.Busy[i].Employee.FullName < out.Busy[j].Employee.FullName
	})

	return out, nil
}
