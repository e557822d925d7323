package timezone

import (
	"fmt"
	"time"
)

// DefaultOffsetHours é o fuso fixo do estúdio (sem horário de verão).
const DefaultOffsetHours = -3

// Clock returns the current instant. Use cases take one so tests can pin it.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

// Fixed returns a zone at a constant offset from UTC, named like "UTC-3".
func Fixed(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*60*60)
}

func Default() *time.Location {
	return Fixed(DefaultOffsetHours)
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}
