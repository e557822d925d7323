package appointment

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/anami-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
	"github.com/BruksfildServices01/anami-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   timezone.Clock
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   timezone.SystemClock,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
) (_ *models.Appointment, err error) {

	ctx, span := startSpan(ctx, "Complete",
		attribute.String("appointment.id", appointmentID.String()),
	)
	defer func() { finishSpan(span, err) }()

	var ap *models.Appointment

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		found, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		ap = found

		if err := domain.Complete(ap, uc.now()); err != nil {
			return err
		}
		return tx.UpdateAppointment(ctx, ap, false)
	})
	if err != nil {
		if !isBusiness(err) {
			uc.log.Error("complete appointment failed",
				zap.String("appointment_id", appointmentID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCompleted,
		Entity:   audit.EntityAppointment,
		EntityID: ap.ID.String(),
	})

	return ap, nil
}
