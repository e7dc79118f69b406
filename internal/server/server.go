package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"salon-booking-api/internal/config"
	"salon-booking-api/internal/server/routes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Server represents the HTTP server with all dependencies
type Server struct {
	router     *gin.Engine
	logger     *slog.Logger
	config     *config.Config
	db         *gorm.DB
	httpServer *http.Server
}

// New creates a new server instance with all dependencies
func New(cfg *config.Config, logger *slog.Logger, db *gorm.DB) *Server {
	// Configure Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin router
	router := gin.New()

	// Create server instance
	server := &Server{
		config: cfg,
		logger: logger,
		db:     db,
		router: router,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	// Setup middleware and routes
	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures global middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recovers from panics
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		s.logger.Error("Panic recovered", "error", recovered)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_server_error",
			"message": "An unexpected error occurred",
		})
	}))

	// Request-id middleware: every response carries a correlation id,
	// echoed in the response envelope by internal/utils.
	s.router.Use(func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	})

	// Structured request logger
	s.router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		statusCode := c.Writer.Status()
		switch {
		case statusCode >= 500:
			s.logger.Error("HTTP request",
				"method", c.Request.Method,
				"path", path,
				"status", statusCode,
				"latency", latency,
				"ip", c.ClientIP(),
			)
		case statusCode >= 400:
			s.logger.Warn("HTTP request",
				"method", c.Request.Method,
				"path", path,
				"status", statusCode,
				"latency", latency,
				"ip", c.ClientIP(),
			)
		default:
			if s.config.Environment != "production" || (path != "/health" && path != "/") {
				s.logger.Info("HTTP request",
					"method", c.Request.Method,
					"path", path,
					"status", statusCode,
					"latency", latency,
					"ip", c.ClientIP(),
				)
			}
		}
	})

	// Security headers middleware
	s.router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("X-API-Version", "1.0.0")
		c.Header("X-Service", "Salon-Booking-API")
		c.Next()
	})

	s.logger.Info("middleware configured")
}

// setupRoutes initializes all application routes
func (s *Server) setupRoutes() {
	routes.Setup(s.router, s.db, s.config)

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     "Salon Booking API",
			"version":     "1.0.0",
			"environment": s.config.Environment,
			"status":      "operational",
			"endpoints": gin.H{
				"health": "GET /health",
				"bot": gin.H{
					"services":        "GET /api/v1/services",
					"masters":         "GET /api/v1/masters",
					"available_slots": "GET /api/v1/available-slots",
					"book":            "POST /api/v1/appointments",
					"book_natural":    "POST /api/v1/appointments/natural",
				},
				"admin":      "HTTP Basic, tenant login/password",
				"superadmin": "HTTP Basic, fixed operator credentials",
			},
		})
	})

	s.logger.Info("routes configured")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server",
		"address", s.httpServer.Addr,
		"environment", s.config.Environment,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("failed to start server", "error", err)
		return err
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown error", "error", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

// GetHTTPServer returns the underlying http.Server for graceful shutdown
func (s *Server) GetHTTPServer() *http.Server {
	return s.httpServer
}

// GetDB returns the database connection (useful for testing)
func (s *Server) GetDB() *gorm.DB {
	return s.db
}

// GetRouter returns the Gin router (useful for testing)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// GetConfig returns the server configuration
func (s *Server) GetConfig() *config.Config {
	return s.config
}

// HealthCheck reports service and database health for monitoring.
func (s *Server) HealthCheck() map[string]interface{} {
	sqlDB, err := s.db.DB()
	dbStatus := "healthy"
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "unhealthy"
	}

	return map[string]interface{}{
		"service":     "Salon Booking API",
		"status":      "healthy",
		"environment": s.config.Environment,
		"timestamp":   time.Now().UTC(),
		"version":     "1.0.0",
		"components": map[string]interface{}{
			"database": dbStatus,
			"server":   "healthy",
		},
	}
}
