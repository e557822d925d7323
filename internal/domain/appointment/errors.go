package appointment

import "github.com/BruksfildServices01/anami-scheduler/internal/httperr"

var (
	ErrInvalidServiceSelection = httperr.ErrBusiness("invalid_service_selection")
	ErrInvalidManualSelection  = httperr.ErrBusiness("invalid_manual_selection")
	ErrInvalidVenueMode        = httperr.ErrBusiness("invalid_venue_mode")
	ErrInvalidDuration         = httperr.ErrBusiness("invalid_duration")
	ErrInvalidTimeRange        = httperr.ErrBusiness("invalid_time_range")
	ErrInvalidState            = httperr.ErrBusiness("invalid_state")
	ErrClientNotFound          = httperr.ErrBusiness("client_not_found")
	ErrNotFound                = httperr.ErrBusiness("appointment_not_found")
	ErrScheduleConflict        = httperr.ErrBusiness("schedule_conflict")
)
