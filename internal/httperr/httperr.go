package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// ======================================================
// BUSINESS → HTTP
// ======================================================

type mapping struct {
	status  int
	message string
}

var businessStatus = map[string]mapping{
	"invalid_service_selection": {http.StatusBadRequest, "One or more selected services are not valid."},
	"invalid_manual_selection":  {http.StatusBadRequest, "A valid duration code is required for off-site bookings."},
	"invalid_venue_mode":        {http.StatusBadRequest, "Unknown venue mode."},
	"invalid_duration":          {http.StatusBadRequest, "Duration must be a positive number of minutes."},
	"invalid_time_range":        {http.StatusBadRequest, "Invalid time range."},
	"invalid_state":             {http.StatusBadRequest, "The appointment cannot make this transition."},
	"client_not_found":          {http.StatusBadRequest, "Client not found."},
	"appointment_not_found":     {http.StatusNotFound, "Appointment not found."},
	"schedule_conflict":         {http.StatusConflict, "The selected time slot is already taken."},
}

// FromError writes the response for err. Business codes map to their client
// status; anything else is reported as an internal error.
func FromError(c *gin.Context, err error) {
	if code, ok := BusinessCode(err); ok {
		if m, known := businessStatus[code]; known {
			Write(c, m.status, code, m.message)
			return
		}
		BadRequest(c, code, code)
		return
	}
	Internal(c, "internal_error", "Unexpected error.")
}
