package schedule

import "time"

// Interval is a half-open [Start, End) span of absolute instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Valid() bool {
	return !i.Start.IsZero() && !i.End.IsZero() && i.End.After(i.Start)
}

// Overlaps reports whether two half-open intervals intersect:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1. Touching intervals
// (one ending exactly when the other starts) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
