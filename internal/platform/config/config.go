package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	Environment    string
	ServiceName    string
	MigrationsPath string
	RunMigrations  bool
	LogLevel       slog.Level

	// Artifact storage
	PDFStoragePath string

	// Telemetry
	PosthogAPIKey   string
	PosthogEndpoint string

	// HTTP
	CORSAllowedOrigins []string
	RateLimit          string
	AuthEnabled        bool
	JWTSecret          string

	// Reference lookup cache
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	ReferenceCacheTTL time.Duration
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// UsesDatabase reports whether a PostgreSQL URL was configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8001")
	v.SetDefault("ENVIRONMENT", EnvironmentProduction)
	v.SetDefault("SERVICE_NAME", "sales-notes-service")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PDF_STORAGE_PATH", "/tmp/sales_notes_pdfs")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REFERENCE_CACHE_TTL", "5m")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		Environment:     strings.ToLower(strings.TrimSpace(v.GetString("ENVIRONMENT"))),
		ServiceName:     v.GetString("SERVICE_NAME"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		RunMigrations:   v.GetBool("RUN_MIGRATIONS"),
		PDFStoragePath:  v.GetString("PDF_STORAGE_PATH"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
		RateLimit:       strings.TrimSpace(v.GetString("RATE_LIMIT")),
		AuthEnabled:     v.GetBool("AUTH_ENABLED"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using the in-memory store.")
	}

	if cfg.Port == "" {
		cfg.Port = "8001"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.Environment == "" {
		cfg.Environment = EnvironmentProduction
	}

	if cfg.PDFStoragePath == "" {
		cfg.PDFStoragePath = "/tmp/sales_notes_pdfs"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	ttlStr := v.GetString("REFERENCE_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
		if ttlStr != "" {
			log.Printf("Warning: Invalid value for REFERENCE_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
		}
	}
	cfg.ReferenceCacheTTL = ttl

	cfg.LogLevel = parseLogLevel(v.GetString("LOG_LEVEL"))

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Println("Warning: AUTH_ENABLED is set but JWT_SECRET is empty. Disabling auth.")
		cfg.AuthEnabled = false
	}

	return cfg, nil
}

func parseLogLevel(raw string) slog.Level {
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
