package appointment

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

func TestCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.ManualSelection{DurationCode: 40})

	cancelled, err := f.cancel.Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.Equal(t, ap.TotalPrice, cancelled.TotalPrice)
	require.NotNil(t, cancelled.CancelledAt)
	firstCancel := *cancelled.CancelledAt

	again, err := f.cancel.Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.True(t, again.CancelledAt.Equal(firstCancel))

	f.book(t, slotT, domain.ManualSelection{DurationCode: 40})

	_, err = f.cancel.Execute(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.ManualSelection{DurationCode: 40})

	done, err := f.complete.Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = f.complete.Execute(ctx, ap.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.cancel.Execute(ctx, ap.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestListAppointmentsClampsPaging(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for i := range 3 {
		f.book(t, slotT.Add(time.Duration(i)*time.Hour), domain.ManualSelection{DurationCode: 40})
	}

	out, err := f.list.Execute(ctx, ListAppointmentsInput{Page: 0, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, MaxPageLimit, out.Limit)
	assert.Equal(t, int64(3), out.Total)
	assert.Len(t, out.Appointments, 3)

	from := slotT.Add(2 * time.Hour)
	to := slotT
	_, err = f.list.Execute(ctx, ListAppointmentsInput{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestAvailabilityReflectsBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.ManualSelection{DurationCode: 40})

	hours := domain.DefaultBusinessHours()
	day, err := hours.ParseDate("2030-03-04")
	require.NoError(t, err)

	slots, err := f.availability.Execute(ctx, domain.AvailabilityInput{Date: day, DurationMinutes: 40})
	require.NoError(t, err)
	assert.Contains(t, slots, "09:20")
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "10:40")

	slots, err = f.availability.Execute(ctx, domain.AvailabilityInput{
		Date:            day,
		DurationMinutes: 40,
		ExcludeID:       &ap.ID,
	})
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")

	_, err = f.availability.Execute(ctx, domain.AvailabilityInput{Date: day})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestAvailabilityLongerThanBusinessDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	day, err := domain.DefaultBusinessHours().ParseDate("2030-03-04")
	require.NoError(t, err)

	// 09:00-20:00 fits exactly one 660 minute booking
	slots, err := f.availability.Execute(ctx, domain.AvailabilityInput{Date: day, DurationMinutes: 660})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)

	for _, minutes := range []int{661, 153722867291} {
		slots, err := f.availability.Execute(ctx, domain.AvailabilityInput{Date: day, DurationMinutes: minutes})
		require.NoError(t, err)
		assert.Empty(t, slots, minutes)
	}
}

func TestRandomOperationsNeverOverlap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rng := rand.New(rand.NewPCG(7, 11))

	var ids []uuid.UUID
	for range 60 {
		start := slotT.Add(time.Duration(rng.IntN(36)) * 10 * time.Minute)

		switch op := rng.IntN(4); {
		case op < 2 || len(ids) == 0:
			ap, err := f.create.Execute(ctx, CreateAppointmentInput{
				ClientID:  f.client.ID,
				StartsAt:  start,
				Selection: domain.ManualSelection{DurationCode: []int{20, 40}[rng.IntN(2)]},
			})
			if err == nil {
				ids = append(ids, ap.ID)
			}
		case op == 2:
			_, _ = f.update.Execute(ctx, UpdateAppointmentInput{
				ID:       ids[rng.IntN(len(ids))],
				StartsAt: &start,
			})
		default:
			_, _ = f.cancel.Execute(ctx, ids[rng.IntN(len(ids))])
		}
	}

	var active []models.Appointment
	require.NoError(t, f.db.Where("status <> ?", string(domain.StatusCancelled)).Find(&active).Error)
	require.NotEmpty(t, active)

	for i := range active {
		for j := i + 1; j < len(active); j++ {
			a, b := domain.IntervalOf(active[i]), domain.IntervalOf(active[j])
			if a.Overlaps(b) {
				t.Fatalf("appointments %s and %s overlap", active[i].ID, active[j].ID)
			}
		}
	}
}
