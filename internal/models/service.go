package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Description     string `gorm:"type:text" json:"description"`
	BasePrice       int64  `gorm:"not null" json:"base_price"`
	DurationMinutes int    `gorm:"not null" json:"duration_minutes"`
	Active          bool   `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
