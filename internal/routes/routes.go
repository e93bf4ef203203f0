package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/config"
	"github.com/BruksfildServices01/barberflow/internal/handlers"
	"github.com/BruksfildServices01/barberflow/internal/identity"
	"github.com/BruksfildServices01/barberflow/internal/middleware"
	"github.com/BruksfildServices01/barberflow/internal/models"
	"github.com/BruksfildServices01/barberflow/internal/state"
	"github.com/BruksfildServices01/barberflow/internal/store"
	ucBooking "github.com/BruksfildServices01/barberflow/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, app *state.AppState, st store.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	identityManager := identity.New(app)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(app, auditDispatcher)
	completeAppointmentUC := ucBooking.NewCompleteAppointment(app, auditDispatcher)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(app, auditDispatcher)
	getAvailabilityUC := ucBooking.NewGetAvailability(app)
	listDayUC := ucBooking.NewListDayAppointments(app)
	dayStatsUC := ucBooking.NewGetDayStats(app)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(identityManager, auditDispatcher, cfg)
	bookingHandler := handlers.NewBookingHandler(app, createAppointmentUC, getAvailabilityUC)
	serviceHandler := handlers.NewServiceHandler(app, auditDispatcher)
	hoursHandler := handlers.NewHoursHandler(app, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		listDayUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		dayStatsUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", bookingHandler.ListServices)
			publicAPI.GET("/availability", bookingHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/barber/register", authHandler.RegisterBarber)
		api.POST("/auth/barber/login", authHandler.LoginBarber)
		api.POST("/auth/client/login", authHandler.LoginClient)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// CLIENT
			// ------------------------------
			client := secured.Group("/bookings")
			client.Use(middleware.RequireRole(models.RoleClient))
			{
				client.POST("", bookingHandler.Create)
				client.GET("", bookingHandler.ListMine)
			}

			// ------------------------------
			// BARBER
			// ------------------------------
			barber := secured.Group("/me")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				barber.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				barber.GET("/stats", appointmentHandler.Stats)

				barber.GET("/services", serviceHandler.List)
				barber.POST("/services", serviceHandler.Create)
				barber.PATCH("/services/:id", serviceHandler.Update)
				barber.DELETE("/services/:id", serviceHandler.Delete)

				barber.GET("/hours", hoursHandler.Get)
				barber.PATCH("/hours/:day", hoursHandler.UpdateDay)

				barber.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
