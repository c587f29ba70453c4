package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/backoffice_app/internal/adapters/memory"
	"github.com/SscSPs/backoffice_app/internal/commands/options"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServerOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the back office API server.",
		Example: `
backoffice serve
PORT=9090 LOG_LEVEL=debug backoffice serve
backoffice serve --port 9090
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if so.Port != "" {
				cfg.Port = so.Port
			}
			return runServer(cfg)
		},
	}

	options.AddServerArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

func runServer(cfg *config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	var analytics portssvc.Analytics
	if posthogClient.IsInitialized() {
		analytics = posthogClient
	}

	store := memory.NewStore()
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store), analytics)
	logger.Info("In-memory store seeded", slog.Time("dashboard_today", cfg.DashboardToday))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := newEngine(cfg, logger, container, posthogClient)
	if err != nil {
		return err
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// newEngine assembles the middleware chain and the routes.
func newEngine(cfg *config.Config, logger *slog.Logger, container *portssvc.ServiceContainer, tracker middleware.Tracker) (*gin.Engine, error) {
	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	r.Use(middleware.RateLimit(rateLimiter))
	r.Use(middleware.PosthogMiddleware(tracker))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, container)
	return r, nil
}

// corsConfig allows the dashboard origins. An empty list allows any origin
// without credentials.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.ActorHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}
