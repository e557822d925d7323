package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

type ClientSummaryDTO struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type AppointmentItemDTO struct {
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	PriceAtBooking int64     `json:"price_at_booking"`
}

type AppointmentDTO struct {
	ID              uuid.UUID            `json:"id"`
	Client          *ClientSummaryDTO    `json:"client"`
	StartsAt        time.Time            `json:"starts_at"`
	EndsAt          time.Time            `json:"ends_at"`
	DurationMinutes int                  `json:"duration_minutes"`
	VenueMode       string               `json:"venue_mode"`
	Status          string               `json:"status"`
	TotalPrice      int64                `json:"total_price"`
	ProviderShare   int64                `json:"provider_share"`
	PartnerShare    int64                `json:"partner_share"`
	HasAddOn        bool                 `json:"has_add_on"`
	DurationCode    int                  `json:"duration_code"`
	Notes           string               `json:"notes"`
	CancelledAt     *time.Time           `json:"cancelled_at,omitempty"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
	Items           []AppointmentItemDTO `json:"items"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:              ap.ID,
		StartsAt:        ap.StartsAt,
		EndsAt:          ap.EndsAt,
		DurationMinutes: ap.DurationMinutes,
		VenueMode:       ap.VenueMode,
		Status:          ap.Status,
		TotalPrice:      ap.TotalPrice,
		ProviderShare:   ap.ProviderShare,
		PartnerShare:    ap.PartnerShare,
		HasAddOn:        ap.HasAddOn,
		DurationCode:    ap.DurationCode,
		Notes:           ap.Notes,
		CancelledAt:     ap.CancelledAt,
		CompletedAt:     ap.CompletedAt,
		Items:           make([]AppointmentItemDTO, 0, len(ap.Items)),
	}

	if ap.Client != nil {
		out.Client = &ClientSummaryDTO{
			ID:       ap.Client.ID,
			FullName: ap.Client.FullName,
		}
	}

	for _, it := range ap.Items {
		item := AppointmentItemDTO{
			ServiceID:      it.ServiceID,
			PriceAtBooking: it.PriceAtBooking,
		}
		if it.Service != nil {
			item.ServiceName = it.Service.Name
		}
		out.Items = append(out.Items, item)
	}

	return out
}

func NewAppointmentListDTO(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentDTO(&aps[i]))
	}
	return out
}
