// Package dbtest opens throwaway SQLite databases migrated with the real
// schema. Only tests import it.
package dbtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/anami-scheduler/internal/db"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// one connection: the in-memory database lives and dies with it
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func Client(t testing.TB, db *gorm.DB, name string) models.Client {
	t.Helper()

	c := models.Client{FullName: name, Phone: "+56900000000"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

func Service(t testing.TB, db *gorm.DB, name string, price int64, minutes int) models.Service {
	t.Helper()

	s := models.Service{Name: name, BasePrice: price, DurationMinutes: minutes, Active: true}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return s
}

// Deactivate flips active off; the column default would swallow a false on
// insert.
func Deactivate(t testing.TB, db *gorm.DB, s *models.Service) {
	t.Helper()

	if err := db.Model(s).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate service: %v", err)
	}
	s.Active = false
}
