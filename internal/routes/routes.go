package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/anami-scheduler/internal/audit"
	"github.com/BruksfildServices01/anami-scheduler/internal/config"
	"github.com/BruksfildServices01/anami-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/anami-scheduler/internal/infra/repository"
	ucAppointment "github.com/BruksfildServices01/anami-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	pricing := ucAppointment.DefaultPricing()

	// ======================================================
	// USE CASES / APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		log,
		pricing,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		log,
		pricing,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		log,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		log,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, cfg.BusinessHours)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		getAvailabilityUC,
		cfg.BusinessHours,
	)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/services", serviceHandler.List)

		appointments := v1.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("/availability", appointmentHandler.Availability)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.PATCH("/:id", appointmentHandler.Update)
			appointments.DELETE("/:id", appointmentHandler.Cancel)
			appointments.PATCH("/:id/complete", appointmentHandler.Complete)
		}

		v1.GET("/audit-logs", auditLogsHandler.List)
	}
}
