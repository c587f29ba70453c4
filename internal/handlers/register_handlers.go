package handlers

import (
	"github.com/SscSPs/backoffice_app/cmd/docs"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// No authentication: the actor middleware only resolves who is acting.
	v1 := r.Group("/api/v1", middleware.ActorMiddleware(cfg.DefaultUserID))

	registerHomeRoutes(v1)
	registerOrderRoutes(v1, service.Order)
	registerLedgerRoutes(v1, service.Ledger)
	registerInvoiceRoutes(v1, service.Invoice)
	registerLookupRoutes(v1, service.Lookup)
	registerViewRoutes(v1, service.View)
	registerDashboardRoutes(v1, service.Dashboard, service.Performance)
	registerReminderRoutes(v1, service.Reminder)
	registerStreamRoutes(v1, service.Changes)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
