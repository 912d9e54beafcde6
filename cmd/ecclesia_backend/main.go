package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/advisory"
	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/localfile"
	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/snapshot"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/handlers"
	"github.com/ecclesia-hq/ecclesia_backend/internal/middleware"
	"github.com/ecclesia-hq/ecclesia_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title Ecclesia Backend API
// @version 1.0
// @description Multi-tenant church management backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Dates move through the API as plain YYYY-MM-DD strings
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}

	// Load (or seed) the tenant snapshot from the local file
	persister := localfile.New(cfg.SnapshotPath)
	store := snapshot.New(context.Background(), persister, logger)
	logger.Info("Tenant store ready", slog.String("snapshot_path", cfg.SnapshotPath))

	var advisor portssvc.AdvisorSvcFacade
	if cfg.AdvisorAPIKey != "" {
		advisor = advisory.NewClient(cfg.AdvisorBaseURL, cfg.AdvisorAPIKey, cfg.AdvisorModel)
	}

	container := services.NewServiceContainer(cfg, store, advisor)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, store)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
