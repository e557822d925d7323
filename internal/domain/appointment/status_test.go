package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusScheduled, StatusCompleted))
	assert.NoError(t, CanTransition(StatusScheduled, StatusCancelled))
	assert.NoError(t, CanTransition(StatusCancelled, StatusCancelled))

	assert.ErrorIs(t, CanTransition(StatusCompleted, StatusScheduled), ErrInvalidState)
	assert.ErrorIs(t, CanTransition(StatusCancelled, StatusScheduled), ErrInvalidState)
	assert.ErrorIs(t, CanTransition(StatusCompleted, StatusCancelled), ErrInvalidState)
}

func TestCancelIsIdempotent(t *testing.T) {
	first := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	require.NoError(t, Cancel(ap, first))
	require.NoError(t, Cancel(ap, first.Add(time.Hour)))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.True(t, ap.CancelledAt.Equal(first))
}

func TestCompleteOnlyFromScheduled(t *testing.T) {
	now := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Complete(ap, now))
	assert.ErrorIs(t, Complete(ap, now), ErrInvalidState)

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	assert.ErrorIs(t, Complete(cancelled, now), ErrInvalidState)
}

func TestParseVenueModeAcceptsLegacyNames(t *testing.T) {
	for raw, want := range map[string]VenueMode{
		"on_site":    VenueOnSite,
		"PARTICULAR": VenueOnSite,
		"off_site":   VenueOffSite,
		"Hotel":      VenueOffSite,
	} {
		got, err := ParseVenueMode(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseVenueMode("beach")
	assert.ErrorIs(t, err, ErrInvalidVenueMode)
}

func TestRescheduleBoundsDuration(t *testing.T) {
	start := time.Date(2030, 1, 1, 13, 0, 0, 0, time.UTC)
	ap := &models.Appointment{}

	require.NoError(t, Reschedule(ap, start, MaxDurationMinutes))
	assert.Equal(t, time.Duration(MaxDurationMinutes)*time.Minute, ap.EndsAt.Sub(ap.StartsAt))

	for _, minutes := range []int{0, -5, MaxDurationMinutes + 1, 153722867291} {
		assert.ErrorIs(t, Reschedule(ap, start, minutes), ErrInvalidDuration, minutes)
	}
	assert.Equal(t, MaxDurationMinutes, ap.DurationMinutes)
}
