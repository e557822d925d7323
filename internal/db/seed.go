package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

// Catálogo oficial. IDs fixos para que o seed seja idempotente.
var catalog = []models.Service{
	{
		ID:              uuid.MustParse("41831bfe-bf2b-4a8f-8588-8ffd7741d3bc"),
		Name:            "Masaje Descontracturante",
		Description:     "Libera tensión muscular profunda en cuello, espalda y hombros.",
		BasePrice:       17000,
		DurationMinutes: 40,
	},
	{
		ID:              uuid.MustParse("3976d400-cf1c-4755-b0b3-974afa3ff84d"),
		Name:            "Masaje Mixto",
		Description:     "Combina trabajo descontracturante y relajante.",
		BasePrice:       15000,
		DurationMinutes: 40,
	},
	{
		ID:              uuid.MustParse("ce66db34-41b9-4d8f-b552-4686e73412a9"),
		Name:            "Masaje de Relajación",
		Description:     "Técnicas suaves con aromaterapia.",
		BasePrice:       13000,
		DurationMinutes: 40,
	},
	{
		ID:              uuid.MustParse("c5bea80a-6185-40ec-8ed2-c03c4f91030f"),
		Name:            "Masaje Cráneo Facial",
		Description:     "Cabeza, sienes, cuello y mandíbula.",
		BasePrice:       10000,
		DurationMinutes: 35,
	},
	{
		ID:              uuid.MustParse("26817bf8-f439-438e-9a84-7289f7a53f75"),
		Name:            "Masaje Cuerpo Completo",
		Description:     "Tratamiento integral de una hora.",
		BasePrice:       20000,
		DurationMinutes: 60,
	},
	{
		ID:              uuid.MustParse("9b7285f5-a3e0-4eea-951c-86c4d97a92ce"),
		Name:            "Drenaje Linfático",
		Description:     "Estimulación manual del sistema linfático.",
		BasePrice:       14000,
		DurationMinutes: 45,
	},
	{
		ID:              uuid.MustParse("a60afe19-e99a-498d-9302-8184a55e0a63"),
		Name:            "Masaje Podal",
		Description:     "Pies y pantorrillas.",
		BasePrice:       10000,
		DurationMinutes: 30,
	},
	{
		ID:              uuid.MustParse("a9db4347-deb1-4065-957c-3fedfd7cbe78"),
		Name:            "Limpieza Facial",
		Description:     "Limpieza, hidratación y masaje facial.",
		BasePrice:       20000,
		DurationMinutes: 60,
	},
}

// SeedServices upserts the catalog; re-running refreshes name, description,
// price and duration without touching the active flag.
func SeedServices(db *gorm.DB) (int, error) {
	services := make([]models.Service, len(catalog))
	copy(services, catalog)
	for i := range services {
		services[i].Active = true
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "base_price", "duration_minutes", "updated_at",
		}),
	}).Create(&services).Error
	if err != nil {
		return 0, err
	}
	return len(services), nil
}
