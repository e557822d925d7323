package appointment

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
) (_ *models.Appointment, err error) {

	ctx, span := startSpan(ctx, "Get",
		attribute.String("appointment.id", appointmentID.String()),
	)
	defer func() { finishSpan(span, err) }()

	return uc.repo.GetAppointment(ctx, appointmentID)
}
