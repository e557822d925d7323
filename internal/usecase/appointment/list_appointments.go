package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type ListAppointmentsInput struct {
	Page  int
	Limit int
	From  *time.Time
	To    *time.Time
}

type ListAppointmentsOutput struct {
	Appointments []models.Appointment
	Total        int64
	Page         int
	Limit        int
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists non-cancelled appointments by start time. Out-of-range page
// and limit values are clamped.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) (_ *ListAppointmentsOutput, err error) {

	ctx, span := startSpan(ctx, "List")
	defer func() { finishSpan(span, err) }()

	page := max(in.Page, 1)

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	limit = min(limit, MaxPageLimit)

	if in.From != nil && in.To != nil && in.To.Before(*in.From) {
		return nil, domain.ErrInvalidTimeRange
	}

	apps, total, err := uc.repo.ListAppointments(
		ctx,
		domain.ListFilter{From: in.From, To: in.To},
		page,
		limit,
	)
	if err != nil {
		return nil, err
	}

	return &ListAppointmentsOutput{
		Appointments: apps,
		Total:        total,
		Page:         page,
		Limit:        limit,
	}, nil
}
