package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
)

func employee(name string) domain.Employee {
	return domain.Employee{ID: uuid.New(), FullName: name, Active: true}
}

func workOrder(employeeID uuid.UUID, start, end time.Time, status domain.WorkOrderStatus) domain.WorkOrder {
	return domain.WorkOrder{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		EmployeeID: employeeID,
		StartAt:    start,
		EndAt:      end,
		Status:     status,
	}
}

func TestResolveAvailability_PartitionsBusyAndAvailable(t *testing.T) {
	r := NewResolver(nil)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	a := employee("Alice")
	b := employee("Bob")

	orders := []domain.WorkOrder{
		workOrder(a.ID, day.Add(14*time.Hour+30*time.Minute), day.Add(15*time.Hour+30*time.Minute), domain.WorkOrderStatusInProgress),
	}

	got, err := r.ResolveAvailability(day.Add(14*time.Hour), 60, []domain.Employee{a, b}, orders)
	if err != nil {
		t.Fatalf("ResolveAvailability error: %v", err)
	}
	if len(got.Available) != 1 || got.Available[0].ID != b.ID {
		t.Fatalf("available = %v, want [Bob]", got.Available)
	}
	if len(got.Busy) != 1 || got.Busy[0].Employee.ID != a.ID {
		t.Fatalf("busy = %v, want [Alice]", got.Busy)
	}
	if !got.Busy[0].BusyUntil.Equal(day.Add(15*time.Hour + 30*time.Minute)) {
		t.Fatalf("busy_until = %v, want 15:30", got.Busy[0].BusyUntil)
	}
}

func TestResolveAvailability_DoneAndCancelledOrdersDoNotOccupy(t *testing.T) {
	r := NewResolver(nil)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	c := employee("Carol")
	orders := []domain.WorkOrder{
		workOrder(c.ID, day.Add(9*time.Hour), day.Add(10*time.Hour), domain.WorkOrderStatusDone),
		workOrder(c.ID, day.Add(9*time.Hour), day.Add(10*time.Hour), domain.WorkOrderStatusCancelled),
		workOrder(c.ID, day.Add(9*time.Hour), day.Add(10*time.Hour), domain.WorkOrderStatusOpen),
	}

	got, err := r.ResolveAvailability(day.Add(9*time.Hour), 60, []domain.Employee{c}, orders)
	if err != nil {
		t.Fatalf("ResolveAvailability error: %v", err)
	}
	if len(got.Available) != 1 {
		t.Fatalf("available = %d, want 1", len(got.Available))
	}
	if len(got.Busy) != 0 {
		t.Fatalf("busy = %d, want 0", len(got.Busy))
	}
}

func TestResolveAvailability_BusyUntilIsMaxEndAcrossConflicts(t *testing.T) {
	r := NewResolver(nil)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	a := employee("Alice")
	orders := []domain.WorkOrder{
		workOrder(a.ID, day.Add(13*time.Hour), day.Add(14*time.Hour+15*time.Minute), domain.WorkOrderStatusAssigned),
		workOrder(a.ID, day.Add(14*time.Hour), day.Add(16*time.Hour), domain.WorkOrderStatusWaiting),
		// Ends later but does not overlap the request; must not affect busy_until.
		workOrder(a.ID, day.Add(17*time.Hour), day.Add(19*time.Hour), domain.WorkOrderStatusAssigned),
	}

	got, err := r.ResolveAvailability(day.Add(14*time.Hour), 60, []domain.Employee{a}, orders)
	if err != nil {
		t.Fatalf("ResolveAvailability error: %v", err)
	}
	if len(got.Busy) != 1 {
		t.Fatalf("busy = %d, want 1", len(got.Busy))
	}
	if !got.Busy[0].BusyUntil.Equal(day.Add(16 * time.Hour)) {
		t.Fatalf("busy_until = %v, want 16:00", got.Busy[0].BusyUntil)
	}
}

func TestResolveAvailability_TouchingOrderIsNotAConflict(t *testing.T) {
	r := NewResolver(nil)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	a := employee("Alice")
	orders := []domain.WorkOrder{
		// Ends exactly when the request starts.
		workOrder(a.ID, day.Add(13*time.Hour), day.Add(14*time.Hour), domain.WorkOrderStatusInProgress),
	}

	got, err := r.ResolveAvailability(day.Add(14*time.Hour), 60, []domain.Employee{a}, orders)
	if err != nil {
		t.Fatalf("ResolveAvailability error: %v", err)
	}
	if len(got.Available) != 1 {
		t.Fatalf("available = %d, want 1", len(got.Available))
	}
}

func TestResolveAvailability_MalformedOrderSkippedNotFatal(t *testing.T) {
	r := NewResolver(nil)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	a := employee("Alice")
	b := employee("Bob")
	orders := []domain.WorkOrder{
		// Missing end time: skipped.
		workOrder(a.ID, day.Add(14*time.Hour), time.Time{}, domain.WorkOrderStatusAssigned),
		// A's second order is well-formed and still evaluated.
		workOrder(a.ID, day.Add(14*time.Hour), day.Add(15*time.Hour), domain.WorkOrderStatusAssigned),
		workOrder(b.ID, day.Add(14*time.Hour), day.Add(14*time.Hour), domain.WorkOrderStatusInProgress),
	}

	got, err := r.ResolveAvailability(day.Add(14*time.Hour), 60, []domain.Employee{a, b}, orders)
	if err != nil {
		t.Fatalf("ResolveAvailability error: %v", err)
	}
	if len(got.Busy) != 1 || got.Busy[0].Employee.ID != a.ID {
		t.Fatalf("busy = %v, want [Alice]", got.Busy)
	}
	if len(got.Available) != 1 || got.Available[0].ID != b.ID {
		t.Fatalf("available = %v, want [Bob]", got.Available)
	}
}

func TestResolveAvailability_PartitionIsCompleteAndSorted(t *testing.T) {
	r := NewResolver(nil)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	roster := []domain.Employee{
		employee("Zoe"), employee("Alice"), employee("Mallory"), employee("Bob"),
	}
	orders := []domain.WorkOrder{
		workOrder(roster[0].ID, day.Add(10*time.Hour), day.Add(11*time.Hour), domain.WorkOrderStatusAssigned),
		workOrder(roster[2].ID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.WorkOrderStatusInProgress),
	}

	got, err := r.ResolveAvailability(day.Add(10*time.Hour), 30, roster, orders)
	if err != nil {
		t.Fatalf("ResolveAvailability error: %v", err)
	}
	if len(got.Available)+len(got.Busy) != len(roster) {
		t.Fatalf("partition size = %d, want %d", len(got.Available)+len(got.Busy), len(roster))
	}

	seen := make(map[uuid.UUID]int)
	for _, e := range got.Available {
		seen[e.ID]++
	}
	for _, b := range got.Busy {
		seen[b.Employee.ID]++
	}
	for _, e := range roster {
		if seen[e.ID] != 1 {
			t.Fatalf("employee %s appears %d times, want 1", e.FullName, seen[e.ID])
		}
	}

	for i := 1; i < len(got.Available); i++ {
		if got.Available[i-1].FullName > got.Available[i].FullName {
			t.Fatalf("available not sorted by full name")
		}
	}
	for i := 1; i < len(got.Busy); i++ {
		if got.Busy[i-1].Employee.FullName > got.Busy[i].Employee.FullName {
			t.Fatalf("busy not sorted by full name")
		}
	}
}

func TestResolveAvailability_RejectsBadWindow(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.ResolveAvailability(time.Time{}, 60, nil, nil)
	var intErr *InvalidIntervalError
	if !errors.As(err, &intErr) {
		t.Fatalf("error type = %T, want *InvalidIntervalError", err)
	}

	_, err = r.ResolveAvailability(time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), 0, nil, nil)
	if !errors.As(err, &intErr) {
		t.Fatalf("error type = %T, want *InvalidIntervalError", err)
	}
}
