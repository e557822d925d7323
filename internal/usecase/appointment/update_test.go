package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

func (f *fixture) book(t *testing.T, start time.Time, sel domain.Selection) *models.Appointment {
	t.Helper()

	ap, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  f.client.ID,
		StartsAt:  start,
		Selection: sel,
	})
	require.NoError(t, err)
	return ap
}

func (f *fixture) reprice(t *testing.T, s models.Service, price int64) {
	t.Helper()
	require.NoError(t, f.db.Model(&s).Update("base_price", price).Error)
}

func TestUpdateNotesOnlyNeitherRepricesNorRescans(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.CatalogSelection{ServiceIDs: []uuid.UUID{f.deep.ID}})

	f.reprice(t, f.deep, 99999)

	// an overlapping row that slipped in behind the lifecycle manager
	intruder := &models.Appointment{
		ClientID:        f.client.ID,
		StartsAt:        slotT,
		EndsAt:          slotT.Add(20 * time.Minute),
		DurationMinutes: 20,
		VenueMode:       string(domain.VenueOffSite),
		DurationCode:    20,
		Status:          string(domain.StatusScheduled),
		TotalPrice:      15000,
		ProviderShare:   9000,
		PartnerShare:    6000,
	}
	require.NoError(t, f.repo.CreateAppointment(ctx, intruder))

	got, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:    ap.ID,
		Notes: ptr("traer toalla"),
	})
	require.NoError(t, err)

	assert.Equal(t, "traer toalla", got.Notes)
	assert.Equal(t, int64(17000), got.TotalPrice)
	assert.Equal(t, int64(17000), got.ProviderShare)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(17000), got.Items[0].PriceAtBooking)
}

func TestUpdateStartKeepsFrozenPrices(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.ManualSelection{DurationCode: 20, HasAddOn: true})

	got, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:       ap.ID,
		StartsAt: ptr(slotT.Add(10 * time.Minute)),
	})
	require.NoError(t, err)

	assert.True(t, got.StartsAt.Equal(slotT.Add(10*time.Minute)))
	assert.True(t, got.EndsAt.Equal(slotT.Add(40*time.Minute)))
	assert.Equal(t, int64(20000), got.TotalPrice)
	assert.Equal(t, int64(6000), got.PartnerShare)
	assert.Equal(t, int64(14000), got.ProviderShare)
}

func TestUpdateStartDetectsConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first := f.book(t, slotT, domain.ManualSelection{DurationCode: 40})
	second := f.book(t, slotT.Add(time.Hour), domain.ManualSelection{DurationCode: 40})

	_, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:       second.ID,
		StartsAt: ptr(slotT.Add(30 * time.Minute)),
	})
	assert.ErrorIs(t, err, domain.ErrScheduleConflict)

	unchanged, err := f.get.Execute(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.StartsAt.Equal(slotT.Add(time.Hour)))

	// moving into the gap right after the first booking is fine
	_, err = f.update.Execute(ctx, UpdateAppointmentInput{
		ID:       second.ID,
		StartsAt: ptr(first.EndsAt),
	})
	require.NoError(t, err)
}

func TestUpdateServicesRepricesAndReplacesItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.CatalogSelection{ServiceIDs: []uuid.UUID{f.deep.ID}})

	f.reprice(t, f.feet, 11000)

	got, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:         ap.ID,
		ServiceIDs: []uuid.UUID{f.deep.ID, f.feet.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, 70, got.DurationMinutes)
	assert.True(t, got.EndsAt.Equal(slotT.Add(70*time.Minute)))
	assert.Equal(t, int64(28000), got.TotalPrice)
	require.Len(t, got.Items, 2)
	assert.Equal(t, f.feet.ID, got.Items[1].ServiceID)
	assert.Equal(t, int64(11000), got.Items[1].PriceAtBooking)
}

func TestUpdateSwitchVenueMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.CatalogSelection{ServiceIDs: []uuid.UUID{f.deep.ID}})

	_, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:        ap.ID,
		VenueMode: ptr(domain.VenueOffSite),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidManualSelection)

	got, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:           ap.ID,
		VenueMode:    ptr(domain.VenueOffSite),
		DurationCode: ptr(40),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.VenueOffSite), got.VenueMode)
	assert.Equal(t, int64(20000), got.TotalPrice)
	assert.Equal(t, int64(8000), got.PartnerShare)
	assert.Empty(t, got.Items)

	_, err = f.update.Execute(ctx, UpdateAppointmentInput{
		ID:        ap.ID,
		VenueMode: ptr(domain.VenueOnSite),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidServiceSelection)

	back, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:         ap.ID,
		VenueMode:  ptr(domain.VenueOnSite),
		ServiceIDs: []uuid.UUID{f.feet.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), back.TotalPrice)
	assert.Zero(t, back.PartnerShare)
	assert.Zero(t, back.DurationCode)
	assert.Len(t, back.Items, 1)
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.ManualSelection{DurationCode: 40})

	got, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:     ap.ID,
		Status: ptr(domain.StatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.NotNil(t, got.CancelledAt)

	_, err = f.update.Execute(ctx, UpdateAppointmentInput{
		ID:     ap.ID,
		Status: ptr(domain.StatusScheduled),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.update.Execute(ctx, UpdateAppointmentInput{
		ID:       ap.ID,
		StartsAt: ptr(slotT.Add(time.Hour)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.update.Execute(ctx, UpdateAppointmentInput{ID: uuid.New(), Notes: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStartKeepsSharesWhenAddOnPriceChanges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.ManualSelection{DurationCode: 20, HasAddOn: true})

	f.update.pricing.Prices.AddOnPrice = 9000

	got, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:       ap.ID,
		StartsAt: ptr(slotT.Add(time.Hour)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20000), got.TotalPrice)
	assert.Equal(t, int64(6000), got.PartnerShare)
	assert.Equal(t, int64(14000), got.ProviderShare)
}

func TestUpdateRejectsOtherVariantFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	onSite := f.book(t, slotT, domain.CatalogSelection{ServiceIDs: []uuid.UUID{f.deep.ID}})
	offSite := f.book(t, slotT.Add(2*time.Hour), domain.ManualSelection{DurationCode: 40})

	_, err := f.update.Execute(ctx, UpdateAppointmentInput{ID: onSite.ID, HasAddOn: ptr(false)})
	assert.ErrorIs(t, err, domain.ErrInvalidServiceSelection)

	_, err = f.update.Execute(ctx, UpdateAppointmentInput{ID: onSite.ID, DurationCode: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidServiceSelection)

	_, err = f.update.Execute(ctx, UpdateAppointmentInput{ID: offSite.ID, ServiceIDs: []uuid.UUID{}})
	assert.ErrorIs(t, err, domain.ErrInvalidManualSelection)

	// same-variant fields equal to the stored values are accepted
	got, err := f.update.Execute(ctx, UpdateAppointmentInput{
		ID:           offSite.ID,
		DurationCode: ptr(40),
		HasAddOn:     ptr(false),
		Notes:        ptr("sin cambios"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), got.TotalPrice)
}

func TestUpdateRejectsDurationsLongerThanADay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, slotT, domain.ManualSelection{DurationCode: 40})

	_, err := f.update.Execute(ctx, UpdateAppointmentInput{ID: ap.ID, DurationCode: ptr(153722867291)})
	assert.ErrorIs(t, err, domain.ErrInvalidManualSelection)

	stored, err := f.get.Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.DurationMinutes)
	assert.Equal(t, 40*time.Minute, stored.EndsAt.Sub(stored.StartsAt))
}
