package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/anami-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/httperr"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
	"github.com/BruksfildServices01/anami-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput lists explicit overrides; nil leaves the stored
// value untouched. A non-nil ServiceIDs (even empty) replaces the services.
type UpdateAppointmentInput struct {
	ID uuid.UUID

	StartsAt     *time.Time
	VenueMode    *domain.VenueMode
	ServiceIDs   []uuid.UUID
	DurationCode *int
	HasAddOn     *bool

	Notes  *string
	Status *domain.Status
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	log     *zap.Logger
	pricing Pricing
	now     timezone.Clock
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	pricing Pricing,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		audit:   audit,
		log:     log,
		pricing: pricing,
		now:     timezone.SystemClock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (_ *models.Appointment, err error) {

	ctx, span := startSpan(ctx, "Update",
		attribute.String("appointment.id", in.ID.String()),
	)
	defer func() { finishSpan(span, err) }()

	var (
		repriced      bool
		priceFallback bool
		attempted     domain.Interval
		statusBefore  domain.Status
		statusAfter   domain.Status
	)

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, in.ID)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// Status
		// --------------------------------------------------
		current := domain.Status(ap.Status)
		next := current
		if in.Status != nil {
			if err := domain.CanTransition(current, *in.Status); err != nil {
				return err
			}
			next = *in.Status
		}
		statusBefore, statusAfter = current, next

		// --------------------------------------------------
		// O que mudou
		// --------------------------------------------------
		storedMode := domain.VenueMode(ap.VenueMode)
		mode := storedMode
		if in.VenueMode != nil {
			mode = *in.VenueMode
		}

		// campos da outra modalidade são rejeitados mesmo sem mudança
		switch {
		case mode == domain.VenueOnSite && (in.DurationCode != nil || in.HasAddOn != nil):
			return domain.ErrInvalidServiceSelection
		case mode == domain.VenueOffSite && in.ServiceIDs != nil:
			return domain.ErrInvalidManualSelection
		}

		selectionChanged := mode != storedMode ||
			in.ServiceIDs != nil ||
			(in.DurationCode != nil && *in.DurationCode != ap.DurationCode) ||
			(in.HasAddOn != nil && *in.HasAddOn != ap.HasAddOn)
		startChanged := in.StartsAt != nil && !in.StartsAt.Equal(ap.StartsAt)

		if (selectionChanged || startChanged) && current != domain.StatusScheduled {
			return domain.ErrInvalidState
		}

		// --------------------------------------------------
		// Duração / preço (congelados salvo nova seleção)
		// --------------------------------------------------
		durationMinutes := ap.DurationMinutes
		replaceItems := false

		if selectionChanged {
			sel, err := mergedSelection(*ap, mode, in)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(ctx, tx, sel)
			if err != nil {
				return err
			}
			resolved, err := uc.pricing.resolver().Resolve(sel, catalog)
			if err != nil {
				return err
			}
			durationMinutes = resolved.DurationMinutes

			shares, err := uc.pricing.Commission.Split(resolved.TotalPrice, resolved.CommissionBase, mode)
			if err != nil {
				return err
			}

			ap.VenueMode = string(mode)
			ap.DurationCode, ap.HasAddOn = 0, false
			if manual, ok := sel.(domain.ManualSelection); ok {
				ap.DurationCode = manual.DurationCode
				ap.HasAddOn = manual.HasAddOn
			}

			replaceItems = in.ServiceIDs != nil || mode != storedMode
			domain.ApplyPricing(ap, resolved, shares, replaceItems)
			repriced = true
			priceFallback = resolved.PriceFallback
		}

		before := domain.IntervalOf(*ap)

		if selectionChanged || startChanged {
			start := ap.StartsAt
			if in.StartsAt != nil {
				start = *in.StartsAt
			}
			if err := domain.Reschedule(ap, start, durationMinutes); err != nil {
				return err
			}
		}

		if in.Notes != nil {
			ap.Notes = *in.Notes
		}

		switch {
		case next == current:
		case next == domain.StatusCancelled:
			if err := domain.Cancel(ap, uc.now()); err != nil {
				return err
			}
		case next == domain.StatusCompleted:
			if err := domain.Complete(ap, uc.now()); err != nil {
				return err
			}
		}

		// --------------------------------------------------
		// Conflito (só se a janela mudou e ainda ocupa agenda)
		// --------------------------------------------------
		after := domain.IntervalOf(*ap)
		windowChanged := !after.Start.Equal(before.Start) || !after.End.Equal(before.End)

		if windowChanged && next.BlocksTimeline() {
			attempted = after
			conflict, err := tx.FindConflicting(ctx, after.Start, after.End, &ap.ID)
			if err != nil {
				return err
			}
			if conflict != nil {
				return domain.ErrScheduleConflict
			}
		}

		return tx.UpdateAppointment(ctx, ap, replaceItems)
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleConflict):
			uc.audit.Dispatch(audit.Event{
				Action:   audit.ActionAppointmentConflict,
				Entity:   audit.EntityAppointment,
				EntityID: in.ID.String(),
				Metadata: map[string]any{
					"starts_at": attempted.Start,
					"ends_at":   attempted.End,
				},
			})
		case !isBusiness(err):
			uc.log.Error("update appointment failed",
				zap.String("appointment_id", in.ID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if priceFallback {
		uc.log.Warn("unknown duration code, repriced at 0",
			zap.String("appointment_id", in.ID.String()),
		)
	}

	meta := map[string]any{"repriced": repriced}
	if priceFallback {
		meta["price_fallback"] = true
	}
	if statusAfter != statusBefore {
		meta["status"] = string(statusAfter)
	}
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentUpdated,
		Entity:   audit.EntityAppointment,
		EntityID: in.ID.String(),
		Metadata: meta,
	})

	return uc.repo.GetAppointment(ctx, in.ID)
}

// mergedSelection builds the selection for the effective venue mode from the
// overrides and what is on record. Fields of the other variant are rejected.
func mergedSelection(
	ap models.Appointment,
	mode domain.VenueMode,
	in UpdateAppointmentInput,
) (domain.Selection, error) {

	switch mode {
	case domain.VenueOnSite:
		if in.DurationCode != nil || in.HasAddOn != nil || in.ServiceIDs == nil {
			return nil, domain.ErrInvalidServiceSelection
		}
		return domain.CatalogSelection{ServiceIDs: in.ServiceIDs}, nil

	case domain.VenueOffSite:
		if in.ServiceIDs != nil {
			return nil, domain.ErrInvalidManualSelection
		}
		sel := domain.ManualSelection{
			DurationCode: ap.DurationCode,
			HasAddOn:     ap.HasAddOn,
		}
		if in.DurationCode != nil {
			sel.DurationCode = *in.DurationCode
		}
		if in.HasAddOn != nil {
			sel.HasAddOn = *in.HasAddOn
		}
		return sel, nil
	}

	return nil, domain.ErrInvalidVenueMode
}

func isBusiness(err error) bool {
	_, ok := httperr.BusinessCode(err)
	return ok
}
