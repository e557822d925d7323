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

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   timezone.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   timezone.SystemClock,
	}
}

// Execute frees the appointment's slot. Prices and times stay as booked;
// cancelling twice is a no-op.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
) (_ *models.Appointment, err error) {

	ctx, span := startSpan(ctx, "Cancel",
		attribute.String("appointment.id", appointmentID.String()),
	)
	defer func() { finishSpan(span, err) }()

	var (
		ap      *models.Appointment
		changed bool
	)

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		found, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		ap = found

		if domain.Status(ap.Status) == domain.StatusCancelled {
			return nil
		}
		if err := domain.Cancel(ap, uc.now()); err != nil {
			return err
		}

		changed = true
		return tx.UpdateAppointment(ctx, ap, false)
	})
	if err != nil {
		if !isBusiness(err) {
			uc.log.Error("cancel appointment failed",
				zap.String("appointment_id", appointmentID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if changed {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionAppointmentCancelled,
			Entity:   audit.EntityAppointment,
			EntityID: ap.ID.String(),
		})
	}

	return ap, nil
}
