package handlers

import (
	"github.com/ecclesia-hq/ecclesia_backend/cmd/docs"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/middleware"
	"github.com/ecclesia-hq/ecclesia_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	store portsrepo.TenantStoreFacade,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, services)

	// Setup API v1 routes with auth and session gate middleware
	setupAPIV1Routes(r, cfg, services, store)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	store portsrepo.TenantStoreFacade,
) {
	// Every v1 route requires a valid token and a passing session gate:
	// pending accounts and members of suspended churches are rejected here,
	// before any handler runs.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.SessionGate(store))

	registerPlatformRoutes(v1, services.Church)

	churches := v1.Group("/churches/:church_id")
	registerChurchRoutes(churches, services.Church)
	registerUserRoutes(churches, services.User)
	registerUnitRoutes(churches, services.Unit)
	registerFirstTimerRoutes(churches, services.FirstTimer)
	registerAttendanceRoutes(churches, services.Attendance)
	registerTaskRoutes(churches, services.Plan)
	registerAnnouncementRoutes(churches, services.Announcement)
	registerPropertyRoutes(churches, services.Property)
	registerEventRoutes(churches, services.Event)
	registerAccountingRoutes(churches, services.Finance)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
