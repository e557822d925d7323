package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

type ListFilter struct {
	From *time.Time
	To   *time.Time
}

type Repository interface {
	// -------- Transaction --------

	// WithinTx runs fn inside one booking transaction that holds the
	// timeline lock; fn must only use the repository it receives.
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Catalog / Client --------
	FindServicesByIDs(
		ctx context.Context,
		ids []uuid.UUID,
	) ([]models.Service, error)

	ClientExists(
		ctx context.Context,
		id uuid.UUID,
	) (bool, error)

	// -------- Appointment (conflict) --------
	FindConflicting(
		ctx context.Context,
		start time.Time,
		end time.Time,
		excludeID *uuid.UUID,
	) (*models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		replaceItems bool,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
		page int,
		limit int,
	) ([]models.Appointment, int64, error)

	// -------- Availability --------
	ListActiveInWindow(
		ctx context.Context,
		start time.Time,
		end time.Time,
		excludeID *uuid.UUID,
	) ([]models.Appointment, error)
}
