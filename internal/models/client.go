package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente atendido; o cadastro é mantido fora do núcleo de agendamento
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName string `gorm:"size:150;not null" json:"full_name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
