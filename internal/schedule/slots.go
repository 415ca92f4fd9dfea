package schedule

import (
	"time"

	"github.com/hamzaj-b/RBU-Autos-sub000/internal/domain"
)

// Slot is one bookable window of the business day. Capacity is how many more
// bookings the slot can accept; full slots are returned with Capacity 0 so
// callers can render them as taken.
type Slot struct {
	Start    time.Time
	End      time.Time
	Capacity int
}

// ResolveSlots returns the ordered bookable slots for a calendar date,
// each with remaining capacity after subtracting the supplied bookings.
//
// The walk starts at the open instant and advances by slot plus buffer
// minutes; a trailing slot that would cross the close instant is dropped.
// Cancelled and finished bookings never consume capacity.
func (r *Resolver) ResolveSlots(date string, hours BusinessHours, bookings []domain.Booking) ([]Slot, error) {
	open, close, err := DayBounds(date, hours)
	if err != nil {
		return nil, err
	}

	capacity := hours.SlotCapacity
	if capacity <= 0 {
		capacity = DefaultSlotCapacity
	}

	slotDur := time.Duration(hours.SlotMinutes) * time.Minute
	step := slotDur + time.Duration(hours.BufferMinutes)*time.Minute

	var slots []Slot
	for t := open; !t.Add(slotDur).After(close); t = t.Add(step) {
		window := Interval{Start: t, End: t.Add(slotDur)}

		remaining := capacity
		for _, b := range bookings {
			if !b.CountsAgainstCapacity() {
				continue
			}
			booked := Interval{Start: b.StartAt, End: b.EndAt}
			if !booked.Valid() {
				continue
			}
			if Overlaps(window, booked) {
				remaining--
			}
		}
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, Slot{Start: window.Start, End: window.End, Capacity: remaining})
	}

	return slots, nil
}
