package appointment

import "time"

type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps compares half-open intervals [aStart, aEnd) and [bStart, bEnd).
// Intervals that only touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

func OverlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
