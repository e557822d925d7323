package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/httperr"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

// timelineLockKey identifies the single shared timeline for
// pg_advisory_xact_lock.
const timelineLockKey int64 = 0x616e616d69

type AppointmentGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {

	if r.inTx {
		return fn(r)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTimeline(tx); err != nil {
			return err
		}
		return fn(&AppointmentGormRepository{db: tx, inTx: true})
	})
}

// lockTimeline serializes booking transactions until commit/rollback.
// SQLite already allows a single writer, so only Postgres needs it.
func lockTimeline(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", timelineLockKey).Error
}

func (r *AppointmentGormRepository) atomic(
	ctx context.Context,
	fn func(db *gorm.DB) error,
) error {

	if r.inTx {
		return fn(r.db.WithContext(ctx))
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

// --------------------------------------------------
// Catalog / Client
// --------------------------------------------------

func (r *AppointmentGormRepository) FindServicesByIDs(
	ctx context.Context,
	ids []uuid.UUID,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *AppointmentGormRepository) ClientExists(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment (conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindConflicting(
	ctx context.Context,
	start time.Time,
	end time.Time,
	excludeID *uuid.UUID,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"status <> ? AND starts_at < ? AND ends_at > ?",
			string(domain.StatusCancelled),
			end.UTC(),
			start.UTC(),
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var ap models.Appointment
	err := q.Order("starts_at ASC").First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.atomic(ctx, func(db *gorm.DB) error {
		if err := db.Omit(clause.Associations).Create(ap).Error; err != nil {
			return translateWriteError(err)
		}
		return createItems(db, ap)
	})
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	replaceItems bool,
) error {

	return r.atomic(ctx, func(db *gorm.DB) error {
		if replaceItems {
			if err := db.
				Where("appointment_id = ?", ap.ID).
				Delete(&models.AppointmentItem{}).Error; err != nil {
				return err
			}
		}

		if err := db.Omit(clause.Associations).Save(ap).Error; err != nil {
			return translateWriteError(err)
		}

		if !replaceItems {
			return nil
		}
		return createItems(db, ap)
	})
}

func createItems(db *gorm.DB, ap *models.Appointment) error {
	if len(ap.Items) == 0 {
		return nil
	}
	for i := range ap.Items {
		ap.Items[i].AppointmentID = ap.ID
		ap.Items[i].Position = i
	}
	return db.Omit(clause.Associations).Create(&ap.Items).Error
}

// translateWriteError maps the overlap exclusion constraint onto the domain
// conflict so a race lost at commit looks like any other conflict.
func translateWriteError(err error) error {
	if httperr.IsExclusionConflict(err) {
		return domain.ErrScheduleConflict
	}
	return err
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Items.Service")
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := withDetails(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
	page int,
	limit int,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status <> ?", string(domain.StatusCancelled))

	if filter.From != nil {
		q = q.Where("starts_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("starts_at <= ?", filter.To.UTC())
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := withDetails(q).
		Order("starts_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveInWindow(
	ctx context.Context,
	start time.Time,
	end time.Time,
	excludeID *uuid.UUID,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Select("id", "starts_at", "ends_at", "status").
		Where(
			"status <> ? AND starts_at < ? AND ends_at > ?",
			string(domain.StatusCancelled),
			end.UTC(),
			start.UTC(),
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("starts_at ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
