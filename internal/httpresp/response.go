package httpresp

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Meta      *PageMeta `json:"meta,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type PageMeta struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// NewPageMeta computes page metadata; limit must be positive.
func NewPageMeta(total int64, page, limit int) PageMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageMeta{
		Total:           total,
		Page:            page,
		Limit:           limit,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

func OK(c *gin.Context, message string, data any) {
	Write(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	Write(c, http.StatusCreated, message, data)
}

func Write(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func Paginated[T any](c *gin.Context, data []T, meta PageMeta) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Message:   "Success",
		Data:      data,
		Meta:      &meta,
		Timestamp: time.Now().UTC(),
	})
}
