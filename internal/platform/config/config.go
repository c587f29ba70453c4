package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/seed"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted, e.g. "100-M"

	ToastTTL       time.Duration
	ViewIdleTTL    time.Duration
	DashboardToday time.Time
	PreviewSize    int
	DefaultUserID  string

	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`
}

const (
	defaultPort        = "8080"
	defaultRateLimit   = "100-M"
	defaultToastTTL    = 5 * time.Second
	defaultViewIdleTTL = 30 * time.Minute
	defaultPreviewSize = 2
	defaultUserID      = "u-amy"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("TOAST_TTL", defaultToastTTL.String())
	viper.SetDefault("VIEW_IDLE_TTL", defaultViewIdleTTL.String())
	viper.SetDefault("DASHBOARD_TODAY", seed.Today)
	viper.SetDefault("PREVIEW_SIZE", defaultPreviewSize)
	viper.SetDefault("DEFAULT_USER_ID", defaultUserID)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = ParseLogLevel(viper.GetString("LOG_LEVEL"))
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.RateLimit = strings.TrimSpace(viper.GetString("RATE_LIMIT"))
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	toastTTLStr := viper.GetString("TOAST_TTL")
	toastTTL, err := time.ParseDuration(toastTTLStr)
	if err != nil || toastTTL <= 0 {
		toastTTL = defaultToastTTL
		log.Printf("Warning: Invalid value for TOAST_TTL ('%s'). Defaulting to %s.\n", toastTTLStr, toastTTL.String())
	}
	cfg.ToastTTL = toastTTL

	idleStr := viper.GetString("VIEW_IDLE_TTL")
	idleTTL, err := time.ParseDuration(idleStr)
	if err != nil || idleTTL <= 0 {
		idleTTL = defaultViewIdleTTL
		log.Printf("Warning: Invalid value for VIEW_IDLE_TTL ('%s'). Defaulting to %s.\n", idleStr, idleTTL.String())
	}
	cfg.ViewIdleTTL = idleTTL

	todayStr := viper.GetString("DASHBOARD_TODAY")
	if todayStr == "" {
		cfg.DashboardToday = domain.DateOnly(time.Now())
	} else if today, ok := domain.ParseDay(todayStr); ok {
		cfg.DashboardToday = today
	} else {
		cfg.DashboardToday = domain.DateOnly(time.Now())
		log.Printf("Warning: Invalid value for DASHBOARD_TODAY ('%s'). Using the current date.\n", todayStr)
	}

	cfg.PreviewSize = viper.GetInt("PREVIEW_SIZE")
	if cfg.PreviewSize <= 0 {
		cfg.PreviewSize = defaultPreviewSize
		log.Printf("Warning: PREVIEW_SIZE must be positive. Defaulting to %d.\n", cfg.PreviewSize)
	}

	cfg.DefaultUserID = strings.TrimSpace(viper.GetString("DEFAULT_USER_ID"))
	if cfg.DefaultUserID == "" {
		cfg.DefaultUserID = defaultUserID
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics is disabled.")
	}

	return cfg, nil
}

// ParseLogLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
