package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/anami-scheduler/internal/config"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates every table. On Postgres it also installs the
// no-overlap exclusion constraint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentItem{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return installOverlapConstraint(db)
}

// appointments_no_overlap: dois agendamentos ativos nunca ocupam o mesmo
// intervalo [starts_at, ends_at).
const overlapConstraintSQL = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_no_overlap
			EXCLUDE USING gist (tstzrange(starts_at, ends_at, '[)') WITH &&)
			WHERE (status <> 'cancelled');
	END IF;
END
$$;`

func installOverlapConstraint(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return fmt.Errorf("btree_gist: %w", err)
	}
	if err := db.Exec(overlapConstraintSQL).Error; err != nil {
		return fmt.Errorf("appointments_no_overlap: %w", err)
	}
	return nil
}
