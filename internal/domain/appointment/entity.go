package appointment

import (
	"time"

	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel is idempotent: an already cancelled appointment is left as is.
func Cancel(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) == StatusCancelled {
		return nil
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// MaxDurationMinutes caps a single booking at one day.
const MaxDurationMinutes = 24 * 60

// Reschedule places ap at start for durationMinutes, keeping endsAt and the
// duration in lockstep.
func Reschedule(ap *models.Appointment, start time.Time, durationMinutes int) error {
	if durationMinutes <= 0 || durationMinutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	ap.StartsAt = start.UTC()
	ap.EndsAt = ap.StartsAt.Add(time.Duration(durationMinutes) * time.Minute)
	ap.DurationMinutes = durationMinutes
	return nil
}

// ApplyPricing copies a resolution and its split onto ap. Line items are only
// rebuilt when replaceItems is set; otherwise the frozen items stay.
func ApplyPricing(ap *models.Appointment, res Resolution, shares Shares, replaceItems bool) {
	ap.TotalPrice = res.TotalPrice
	ap.ProviderShare = shares.Provider
	ap.PartnerShare = shares.Partner

	if !replaceItems {
		return
	}

	items := make([]models.AppointmentItem, 0, len(res.Items))
	for i, it := range res.Items {
		items = append(items, models.AppointmentItem{
			AppointmentID:  ap.ID,
			ServiceID:      it.ServiceID,
			Position:       i,
			PriceAtBooking: it.PriceAtBooking,
		})
	}
	ap.Items = items
}

func IntervalOf(ap models.Appointment) Interval {
	return Interval{Start: ap.StartsAt, End: ap.EndsAt}
}
