package appointment

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	hours domain.BusinessHours
	now   timezone.Clock
}

func NewGetAvailability(repo domain.Repository, hours domain.BusinessHours) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		hours: hours,
		now:   timezone.SystemClock,
	}
}

// Execute returns the free "HH:MM" start times of the day. Nothing is
// cached: each call reads the day's bookings again.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (_ []string, err error) {

	ctx, span := startSpan(ctx, "Availability",
		attribute.String("date", in.Date.Format("2006-01-02")),
		attribute.Int("duration_minutes", in.DurationMinutes),
	)
	defer func() { finishSpan(span, err) }()

	if in.DurationMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	// nothing longer than the business day can fit
	if in.DurationMinutes > uc.hours.CloseMinute-uc.hours.OpenMinute {
		return []string{}, nil
	}

	open, closeAt := uc.hours.Window(in.Date)

	booked, err := uc.repo.ListActiveInWindow(ctx, open, closeAt, in.ExcludeID)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(booked))
	for _, ap := range booked {
		busy = append(busy, domain.IntervalOf(ap))
	}

	return uc.hours.AvailableSlots(
		in.Date,
		time.Duration(in.DurationMinutes)*time.Minute,
		busy,
		uc.now(),
	), nil
}
