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
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uuid.UUID
	StartsAt  time.Time
	Selection domain.Selection
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	log     *zap.Logger
	pricing Pricing
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	pricing Pricing,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		audit:   audit,
		log:     log,
		pricing: pricing,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (_ *models.Appointment, err error) {

	ctx, span := startSpan(ctx, "Create",
		attribute.String("client.id", in.ClientID.String()),
	)
	defer func() { finishSpan(span, err) }()

	if in.Selection == nil {
		return nil, domain.ErrInvalidVenueMode
	}
	mode := in.Selection.VenueMode()

	// --------------------------------------------------
	// Cliente
	// --------------------------------------------------
	exists, err := uc.repo.ClientExists(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrClientNotFound
	}

	// --------------------------------------------------
	// Duração / preço / comissão
	// --------------------------------------------------
	catalog, err := loadCatalog(ctx, uc.repo, in.Selection)
	if err != nil {
		return nil, err
	}

	res, err := uc.pricing.resolver().Resolve(in.Selection, catalog)
	if err != nil {
		return nil, err
	}

	shares, err := uc.pricing.Commission.Split(res.TotalPrice, res.CommissionBase, mode)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:  in.ClientID,
		VenueMode: string(mode),
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}
	if manual, ok := in.Selection.(domain.ManualSelection); ok {
		ap.DurationCode = manual.DurationCode
		ap.HasAddOn = manual.HasAddOn
	}

	if err := domain.Reschedule(ap, in.StartsAt, res.DurationMinutes); err != nil {
		return nil, err
	}
	domain.ApplyPricing(ap, res, shares, true)

	if res.PriceFallback {
		uc.log.Warn("unknown duration code, booking at price 0",
			zap.Int("duration_code", ap.DurationCode),
			zap.String("client_id", in.ClientID.String()),
		)
	}

	// --------------------------------------------------
	// Conflito + persistência (transação serializada)
	// --------------------------------------------------
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		conflict, err := tx.FindConflicting(ctx, ap.StartsAt, ap.EndsAt, nil)
		if err != nil {
			return err
		}
		if conflict != nil {
			return domain.ErrScheduleConflict
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		if errors.Is(err, domain.ErrScheduleConflict) {
			uc.audit.Dispatch(audit.Event{
				Action: audit.ActionAppointmentConflict,
				Entity: audit.EntityAppointment,
				Metadata: map[string]any{
					"starts_at": ap.StartsAt,
					"ends_at":   ap.EndsAt,
				},
			})
		} else {
			uc.log.Error("create appointment failed", zap.Error(err))
		}
		return nil, err
	}

	// --------------------------------------------------
	// Auditoria
	// --------------------------------------------------
	meta := map[string]any{
		"venue_mode":  ap.VenueMode,
		"total_price": ap.TotalPrice,
	}
	if res.PriceFallback {
		meta["price_fallback"] = true
	}
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: ap.ID.String(),
		Metadata: meta,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
