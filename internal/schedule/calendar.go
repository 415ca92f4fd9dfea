package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BusinessHours is the shop's bookable-day configuration. OpenTime and
// CloseTime are local wall-clock "HH:mm" strings interpreted in Timezone.
type BusinessHours struct {
	Timezone             string
	OpenTime             string
	CloseTime            string
	SlotMinutes          int
	BufferMinutes        int
	SlotCapacity         int
	AllowCustomerBooking bool
}

// DefaultSlotCapacity is the maximum concurrent bookings per slot when the
// configuration does not say otherwise: one booking per slot.
const DefaultSlotCapacity = 1

const dateLayout = "2006-01-02"

// LocalMinutes projects an instant into tz's local minutes-since-midnight,
// in [0, 1440). The conversion goes through the timezone database so DST
// transitions land on the right wall clock.
func LocalMinutes(t time.Time, tz string) (int, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(tz))
	if err != nil {
		return 0, configurationError("invalid timezone")
	}
	local := t.In(loc)
	return local.Hour()*60 + local.Minute(), nil
}

// DayBounds resolves a calendar date, interpreted in the configured timezone,
// to the absolute open and close instants of that business day.
func DayBounds(date string, hours BusinessHours) (time.Time, time.Time, error) {
	loc, openMin, closeMin, err := hours.resolve()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, time.Time{}, invalidDateError(fmt.Sprintf("date must be %s", dateLayout))
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), openMin/60, openMin%60, 0, 0, loc)
	close := time.Date(day.Year(), day.Month(), day.Day(), closeMin/60, closeMin%60, 0, 0, loc)
	return open, close, nil
}

// resolve validates the configuration and returns the location plus open and
// close as minutes-since-midnight.
func (h BusinessHours) resolve() (*time.Location, int, int, error) {
	tz := strings.TrimSpace(h.Timezone)
	if tz == "" {
		return nil, 0, 0, configurationError("timezone is required")
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, 0, 0, configurationError("invalid timezone")
	}

	openMin, err := clockMinutes(h.OpenTime)
	if err != nil {
		return nil, 0, 0, configurationError("open_time must be HH:mm")
	}
	closeMin, err := clockMinutes(h.CloseTime)
	if err != nil {
		return nil, 0, 0, configurationError("close_time must be HH:mm")
	}
	// Overnight hours (close before open) are not supported.
	if openMin >= closeMin {
		return nil, 0, 0, configurationError("open_time must be before close_time")
	}

	if h.SlotMinutes <= 0 {
		return nil, 0, 0, configurationError("slot_minutes must be positive")
	}
	if h.BufferMinutes < 0 {
		return nil, 0, 0, configurationError("buffer_minutes must not be negative")
	}

	return loc, openMin, closeMin, nil
}

func clockMinutes(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock %q", clock)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return hh*60 + mm, nil
}
