package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ListingSourceDatabase = "database"
	ListingSourceUpstream = "upstream"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Upstream  UpstreamConfig
	Dashboard DashboardConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port             string `validate:"required,numeric"`
	Host             string
	Environment      string        `validate:"oneof=development testing production"`
	ReadTimeout      time.Duration `validate:"gt=0"`
	WriteTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string `validate:"oneof=postgres sqlite"`
	Host            string `validate:"required_if=Driver postgres"`
	Port            string `validate:"required_if=Driver postgres"`
	User            string
	Password        string
	Name            string `validate:"required_if=Driver postgres"`
	SSLMode         string
	SQLitePath      string `validate:"required_if=Driver sqlite"`
	MaxConnections  int    `validate:"gte=1"`
	MaxIdleConns    int    `validate:"gte=0"`
	ConnMaxLifetime time.Duration
	RunMigrations   bool
}

// UpstreamConfig describes the remote payments API that owns the transaction records
type UpstreamConfig struct {
	BaseURL          string `validate:"omitempty,url"`
	APIKey           string
	SigningSecret    string
	TokenTTL         time.Duration `validate:"gt=0"`
	Timeout          time.Duration `validate:"gt=0"`
	FailureThreshold int           `validate:"gte=1"`
	ResetTimeout     time.Duration `validate:"gt=0"`
}

type DashboardConfig struct {
	ListingSource   string `validate:"oneof=database upstream"`
	DefaultPageSize int    `validate:"gte=1,ltefield=MaxPageSize"`
	MaxPageSize     int    `validate:"gte=1"`
	PageWindow      int    `validate:"gte=1"`
	RecentCount     int    `validate:"gte=1"`
	PublicBaseURL   string `validate:"omitempty,url"`
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond int `validate:"gte=1"`
	Burst             int `validate:"gte=1"`
}

// Load reads configuration from the environment, after an optional .env file
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "feedash"),
			Password:        getEnv("DB_PASSWORD", "feedash_password"),
			Name:            getEnv("DB_NAME", "feedash"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "feedash.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			RunMigrations:   getBoolEnv("RUN_MIGRATIONS", true),
		},
		Upstream: UpstreamConfig{
			BaseURL:          getEnv("UPSTREAM_BASE_URL", ""),
			APIKey:           getEnv("UPSTREAM_API_KEY", ""),
			SigningSecret:    getEnv("UPSTREAM_SIGNING_SECRET", ""),
			TokenTTL:         getDurationEnv("UPSTREAM_TOKEN_TTL", 5*time.Minute),
			Timeout:          getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
			FailureThreshold: getIntEnv("UPSTREAM_FAILURE_THRESHOLD", 5),
			ResetTimeout:     getDurationEnv("UPSTREAM_RESET_TIMEOUT", 30*time.Second),
		},
		Dashboard: DashboardConfig{
			ListingSource:   strings.ToLower(getEnv("LISTING_SOURCE", ListingSourceDatabase)),
			DefaultPageSize: getIntEnv("DASHBOARD_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     getIntEnv("DASHBOARD_MAX_PAGE_SIZE", 100),
			PageWindow:      getIntEnv("DASHBOARD_PAGE_WINDOW", 5),
			RecentCount:     getIntEnv("DASHBOARD_RECENT_COUNT", 5),
			PublicBaseURL:   getEnv("DASHBOARD_PUBLIC_BASE_URL", ""),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getBoolEnv("RATE_LIMIT_ENABLED", true),
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate checks the loaded values against their struct constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Dashboard.ListingSource == ListingSourceUpstream && c.Upstream.BaseURL == "" {
		return fmt.Errorf("invalid configuration: UPSTREAM_BASE_URL is required when LISTING_SOURCE=%s", ListingSourceUpstream)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns the database URL golang-migrate expects
func (c *DatabaseConfig) MigrationURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.SQLitePath
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
