package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-booking-api/internal/config"
	"salon-booking-api/internal/database"
	"salon-booking-api/internal/server"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal
	<-ctx.Done()

	log.Println("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Give the server 10 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown with error: %v", err)
	}

	log.Println("server shutdown complete")
	done <- true
}

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("DEBUG") == "true" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("starting salon booking API")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"business_timezone", cfg.BusinessTimezone,
		"slot_grid_minutes", cfg.SlotGridMinutes,
	)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("database connected successfully")

	if err := database.SeedDatabase(db); err != nil {
		logger.Warn("failed to seed database", "error", err)
	}

	if err := database.CreateUniqueConstraints(db); err != nil {
		logger.Warn("failed to create database constraints", "error", err)
	}

	serverInstance := server.New(cfg, logger, db)
	logger.Info("server initialized successfully",
		"url", "http://localhost:"+cfg.Port,
		"environment", cfg.Environment,
	)

	done := make(chan bool, 1)
	go gracefulShutdown(serverInstance.GetHTTPServer(), done)

	if err := serverInstance.Start(); err != nil && err != http.ErrServerClosed {
		logger.Error("server startup error", "error", err)

		if dbErr := database.CloseConnection(db); dbErr != nil {
			logger.Error("failed to close database connection", "error", dbErr)
		}

		os.Exit(1)
	}

	<-done

	if err := database.CloseConnection(db); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}

	logger.Info("salon booking API shutdown complete")
}
