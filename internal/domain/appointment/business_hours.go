package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/anami-scheduler/internal/timezone"
)

// BusinessHours is the single daily window the timeline is open, expressed in
// a fixed-offset zone (no DST).
type BusinessHours struct {
	OpenMinute  int // minutos desde 00:00
	CloseMinute int
	Step        time.Duration
	Location    *time.Location
}

func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenMinute:  9 * 60,
		CloseMinute: 20 * 60,
		Step:        10 * time.Minute,
		Location:    timezone.Default(),
	}
}

// NewBusinessHours builds the window from "HH:MM" strings.
func NewBusinessHours(openHM, closeHM string, step time.Duration, offsetHours int) (BusinessHours, error) {
	o, err := parseHM(openHM)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("business open: %w", err)
	}
	c, err := parseHM(closeHM)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("business close: %w", err)
	}
	if c <= o {
		return BusinessHours{}, fmt.Errorf("business close %q must be after open %q", closeHM, openHM)
	}
	if offsetHours < -12 || offsetHours > 14 {
		return BusinessHours{}, fmt.Errorf("utc offset %d out of range", offsetHours)
	}
	if step <= 0 {
		return BusinessHours{}, fmt.Errorf("slot step must be positive, got %s", step)
	}

	return BusinessHours{
		OpenMinute:  o,
		CloseMinute: c,
		Step:        step,
		Location:    timezone.Fixed(offsetHours),
	}, nil
}

func parseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Window returns the open and close instants for the local day of date.
func (b BusinessHours) Window(date time.Time) (time.Time, time.Time) {
	local := date.In(b.Location)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, b.Location)
	return midnight.Add(time.Duration(b.OpenMinute) * time.Minute),
		midnight.Add(time.Duration(b.CloseMinute) * time.Minute)
}

// ParseDate reads a YYYY-MM-DD day in the business zone.
func (b BusinessHours) ParseDate(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, b.Location)
}
