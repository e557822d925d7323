package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/dto"
	"github.com/BruksfildServices01/anami-scheduler/internal/httperr"
	"github.com/BruksfildServices01/anami-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/anami-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create          *ucAppointment.CreateAppointment
	update          *ucAppointment.UpdateAppointment
	cancel          *ucAppointment.CancelAppointment
	complete        *ucAppointment.CompleteAppointment
	get             *ucAppointment.GetAppointment
	list            *ucAppointment.ListAppointments
	getAvailability *ucAppointment.GetAvailability

	hours domain.BusinessHours
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	getAvailability *ucAppointment.GetAvailability,
	hours domain.BusinessHours,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:          create,
		update:          update,
		cancel:          cancel,
		complete:        complete,
		get:             get,
		list:            list,
		getAvailability: getAvailability,
		hours:           hours,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	StartsAt  string `json:"starts_at" binding:"required"`
	VenueMode string `json:"venue_mode" binding:"required"`

	// on_site
	ServiceIDs []string `json:"service_ids"`

	// off_site
	DurationCode *int  `json:"duration_code"`
	HasAddOn     *bool `json:"has_add_on"`

	Notes string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	StartsAt     *string  `json:"starts_at"`
	VenueMode    *string  `json:"venue_mode"`
	ServiceIDs   []string `json:"service_ids"`
	DurationCode *int     `json:"duration_code"`
	HasAddOn     *bool    `json:"has_add_on"`
	Notes        *string  `json:"notes"`
	Status       *string  `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "client_id must be a UUID.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_starts_at", "starts_at must be an RFC 3339 timestamp.")
		return
	}

	mode, err := domain.ParseVenueMode(req.VenueMode)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	sel, err := toSelection(mode, req.ServiceIDs, req.DurationCode, req.HasAddOn)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:  clientID,
		StartsAt:  start,
		Selection: sel,
		Notes:     strings.TrimSpace(req.Notes),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, "Appointment created", dto.NewAppointmentDTO(ap))
}

// toSelection turns the flat body into the variant for mode, rejecting the
// fields that belong to the other one.
func toSelection(
	mode domain.VenueMode,
	rawIDs []string,
	durationCode *int,
	hasAddOn *bool,
) (domain.Selection, error) {

	switch mode {
	case domain.VenueOnSite:
		if durationCode != nil || hasAddOn != nil || len(rawIDs) == 0 {
			return nil, domain.ErrInvalidServiceSelection
		}
		ids, err := parseIDs(rawIDs)
		if err != nil {
			return nil, err
		}
		return domain.CatalogSelection{ServiceIDs: ids}, nil

	case domain.VenueOffSite:
		if rawIDs != nil || durationCode == nil {
			return nil, domain.ErrInvalidManualSelection
		}
		sel := domain.ManualSelection{DurationCode: *durationCode}
		if hasAddOn != nil {
			sel.HasAddOn = *hasAddOn
		}
		return sel, nil
	}

	return nil, domain.ErrInvalidVenueMode
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, domain.ErrInvalidServiceSelection
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		ID:           id,
		DurationCode: req.DurationCode,
		HasAddOn:     req.HasAddOn,
		Notes:        req.Notes,
	}

	if req.StartsAt != nil {
		start, err := time.Parse(time.RFC3339, *req.StartsAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_starts_at", "starts_at must be an RFC 3339 timestamp.")
			return
		}
		in.StartsAt = &start
	}

	if req.VenueMode != nil {
		mode, err := domain.ParseVenueMode(*req.VenueMode)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		in.VenueMode = &mode
	}

	if req.ServiceIDs != nil {
		ids, err := parseIDs(req.ServiceIDs)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		in.ServiceIDs = ids
	}

	if req.Status != nil {
		status, err := domain.ParseStatus(strings.ToLower(*req.Status))
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		in.Status = &status
	}

	ap, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Appointment updated", dto.NewAppointmentDTO(ap))
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Appointment cancelled", dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Appointment completed", dto.NewAppointmentDTO(ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Success", dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ucAppointment.DefaultPageLimit)))

	in := ucAppointment.ListAppointmentsInput{Page: page, Limit: limit}

	if raw := c.Query("from"); raw != "" {
		from, err := h.parseBound(raw, false)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD or RFC 3339.")
			return
		}
		in.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := h.parseBound(raw, true)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD or RFC 3339.")
			return
		}
		in.To = &to
	}

	out, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Paginated(
		c,
		dto.NewAppointmentListDTO(out.Appointments),
		httpresp.NewPageMeta(out.Total, out.Page, out.Limit),
	)
}

// parseBound reads an RFC 3339 instant or a business-zone day; a day used as
// the upper bound covers the whole day.
func (h *AppointmentHandler) parseBound(raw string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	day, err := h.hours.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return day, nil
}

// ======================================================
// AVAILABILITY
// ======================================================

type AvailabilityResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	date, err := h.hours.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	duration, err := strconv.Atoi(c.Query("duration_minutes"))
	if err != nil {
		httperr.FromError(c, domain.ErrInvalidDuration)
		return
	}

	in := domain.AvailabilityInput{
		Date:            date,
		DurationMinutes: duration,
	}

	if raw := c.Query("exclude_id"); raw != "" {
		excl, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_exclude_id", "exclude_id must be a UUID.")
			return
		}
		in.ExcludeID = &excl
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Success", AvailabilityResponse{
		Date:            dateStr,
		DurationMinutes: duration,
		Slots:           slots,
	})
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a UUID.")
		return uuid.Nil, false
	}
	return id, true
}
