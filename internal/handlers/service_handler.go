package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/anami-scheduler/internal/httperr"
	"github.com/BruksfildServices01/anami-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

// ServiceHandler exposes the catalog read-only; it is maintained by the
// seed command.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Where("active = ?", true)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	if services == nil {
		services = []models.Service{}
	}
	httpresp.OK(c, "Success", services)
}
