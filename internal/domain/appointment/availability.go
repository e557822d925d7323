package appointment

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

type AvailabilityInput struct {
	Date            time.Time
	DurationMinutes int
	ExcludeID       *uuid.UUID
}

// Slots lazily yields every start time on date's business day at which a
// booking of duration fits before close, is not in the past and does not
// overlap busy.
func (b BusinessHours) Slots(date time.Time, duration time.Duration, busy []Interval, now time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if duration <= 0 || b.Step <= 0 {
			return
		}

		open, closeAt := b.Window(date)

		for cur := open; cur.Before(closeAt); cur = cur.Add(b.Step) {
			end := cur.Add(duration)

			if cur.Before(now) {
				continue
			}
			if end.After(closeAt) {
				// later candidates only end later
				return
			}
			if OverlapsAny(Interval{Start: cur, End: end}, busy) {
				continue
			}
			if !yield(cur) {
				return
			}
		}
	}
}

// AvailableSlots formats Slots as local "HH:MM" strings.
func (b BusinessHours) AvailableSlots(date time.Time, duration time.Duration, busy []Interval, now time.Time) []string {
	out := []string{}
	for start := range b.Slots(date, duration, busy, now) {
		out = append(out, start.In(b.Location).Format("15:04"))
	}
	return out
}
