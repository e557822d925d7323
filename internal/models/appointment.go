package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   *Client   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	StartsAt        time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt          time.Time `gorm:"not null" json:"ends_at"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	VenueMode    string `gorm:"size:20;not null" json:"venue_mode"`
	DurationCode int    `gorm:"not null;default:0" json:"duration_code"`
	HasAddOn     bool   `gorm:"not null;default:false" json:"has_add_on"`

	Status string `gorm:"size:20;not null;default:'scheduled';index" json:"status"`

	TotalPrice    int64 `gorm:"not null" json:"total_price"`
	ProviderShare int64 `gorm:"not null" json:"provider_share"`
	PartnerShare  int64 `gorm:"not null" json:"partner_share"`

	Notes       string     `gorm:"type:text" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Items []AppointmentItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave keeps every stored instant in UTC so range queries compare
// like with like regardless of the caller's location.
func (a *Appointment) BeforeSave(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.StartsAt = a.StartsAt.UTC()
	a.EndsAt = a.EndsAt.UTC()
	return nil
}
