package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentItem freezes the price of one service at booking time.
type AppointmentItem struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   *Service  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	Position       int   `gorm:"not null" json:"position"`
	PriceAtBooking int64 `gorm:"not null" json:"price_at_booking"`
}

func (i *AppointmentItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
