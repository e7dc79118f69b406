// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salon-booking-api/internal/config"
	"salon-booking-api/internal/handlers"
	"salon-booking-api/internal/middlewares"
	"salon-booking-api/internal/repositories"
	"salon-booking-api/internal/services"
	"salon-booking-api/internal/utils"
)

// Setup wires repositories, services, and handlers, and mounts the three
// auth zones described in §4.1/§6.1: the tenant bot API (token header),
// the tenant admin API (Basic, tenant credentials), and the super-admin
// API (Basic, fixed operator credentials).
func Setup(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	router.Use(middlewares.CustomCORS(cfg))

	// Repositories
	tenantRepo := repositories.NewTenantRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)

	// Services
	tenantService := services.NewTenantService(tenantRepo, cfg)
	catalogService := services.NewCatalogService(catalogRepo, scheduleRepo)
	availabilityService := services.NewAvailabilityService(catalogRepo, scheduleRepo, appointmentRepo, cfg)
	bookingService := services.NewBookingService(db, catalogRepo, scheduleRepo, clientRepo, appointmentRepo, cfg)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	botHandler := handlers.NewBotHandler(catalogService, availabilityService, bookingService, cfg)
	adminHandler := handlers.NewAdminHandler(clientRepo, bookingService, appointmentRepo, catalogService, cfg)
	tenantHandler := handlers.NewTenantHandler(tenantRepo)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middlewares.TenantTokenAuth(tenantService, cfg.BotTokenHeader))
	{
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/masters", catalogHandler.ListMasters)
		api.GET("/services/:id/masters", catalogHandler.MastersForService)
		api.GET("/masters/:id/services", catalogHandler.ServicesForMaster)
		api.GET("/salon-info", botHandler.SalonInfo)

		api.GET("/available-slots", botHandler.AvailableSlots)
		api.GET("/active-days-in-month", botHandler.ActiveDaysInMonth)

		api.POST("/appointments", botHandler.CreateAppointment)
		api.POST("/appointments/natural", botHandler.CreateAppointmentNatural)
		api.DELETE("/bot/appointments/:id", botHandler.CancelAppointment)

		api.GET("/clients/:external_user_id/appointments", botHandler.ClientAppointments)
		api.PATCH("/clients/:external_user_id", botHandler.UpdateClientPhone)
	}

	admin := router.Group("/admin")
	admin.Use(middlewares.TenantBasicAuth(tenantService))
	{
		admin.GET("/services", catalogHandler.ListServices)
		admin.POST("/services", catalogHandler.CreateService)
		admin.GET("/services/:id", catalogHandler.GetService)
		admin.PUT("/services/:id", catalogHandler.UpdateService)
		admin.DELETE("/services/:id", catalogHandler.DeleteService)

		admin.GET("/masters", catalogHandler.ListMasters)
		admin.POST("/masters", catalogHandler.CreateMaster)
		admin.GET("/masters/:id", catalogHandler.GetMaster)
		admin.PUT("/masters/:id", catalogHandler.UpdateMaster)
		admin.DELETE("/masters/:id", catalogHandler.DeleteMaster)
		admin.PUT("/masters/:id/services", catalogHandler.SetMasterServices)
		admin.GET("/masters/:id/services", catalogHandler.ServicesForMaster)
		admin.GET("/masters/:id/schedule", catalogHandler.GetSchedule)
		admin.PUT("/masters/:id/schedule", catalogHandler.ReplaceSchedule)

		admin.GET("/clients", adminHandler.ListClients)
		admin.POST("/clients", adminHandler.CreateClient)
		admin.GET("/clients/:id", adminHandler.GetClient)
		admin.PUT("/clients/:id", adminHandler.UpdateClient)
		admin.DELETE("/clients/:id", adminHandler.DeleteClient)
		admin.GET("/clients/:id/appointments", adminHandler.ClientAppointments)

		admin.POST("/appointments", adminHandler.CreateAppointment)
		admin.PUT("/appointments/:id", adminHandler.UpdateAppointment)
		admin.DELETE("/appointments/:id", adminHandler.CancelAppointment)

		admin.GET("/schedule", adminHandler.ScheduleDayView)
	}

	superadmin := router.Group("/superadmin")
	superadmin.Use(middlewares.SuperAdminBasicAuth(tenantService))
	{
		superadmin.GET("/salons", tenantHandler.ListTenants)
		superadmin.POST("/salons", tenantHandler.CreateTenant)
		superadmin.PUT("/salons/:id", tenantHandler.UpdateTenant)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.FailWithStatus(c, http.StatusNotFound, "route not found")
	})
}
