package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"3001"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Database settings
	Database DatabaseConfig

	// Session token verification
	Auth AuthConfig

	// Assistant provider settings
	Assistant AssistantConfig

	// Server timeouts. Write and idle timeouts are long because assistant
	// runs stream over SSE.
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"600s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"600s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host         string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port         int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string        `env:"POSTGRES_USER" envDefault:"academia"`
	Password     string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database     string        `env:"POSTGRES_DB" envDefault:"academia"`
	SSLMode      string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	QueryDebug   bool          `env:"DB_QUERY_DEBUG" envDefault:"false"`
}

// DSN returns the PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

// AuthConfig holds session token settings
type AuthConfig struct {
	// JWTSecret is the HS256 secret the app signs session tokens with
	JWTSecret string `env:"AUTH_JWT_SECRET" envDefault:""`
}

// AssistantConfig holds the external assistant provider settings
type AssistantConfig struct {
	// APIKey authenticates against the assistant provider
	APIKey string `env:"OPENAI_API_KEY" envDefault:""`

	// AssistantID identifies the pre-configured assistant to run
	AssistantID string `env:"OPENAI_ASSISTANT_ID" envDefault:""`

	// BaseURL overrides the provider API endpoint (used in tests)
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:""`

	// PollInterval is the delay between run status polls
	PollInterval time.Duration `env:"ASSISTANT_POLL_INTERVAL" envDefault:"800ms"`

	// MaxWait bounds the total wall-clock time of a single run
	MaxWait time.Duration `env:"ASSISTANT_MAX_WAIT" envDefault:"120s"`

	// MaxToolCycles bounds the number of requires_action rounds per run
	MaxToolCycles int `env:"ASSISTANT_MAX_TOOL_CYCLES" envDefault:"8"`
}

// IsConfigured returns true if the assistant provider can be used
func (a *AssistantConfig) IsConfigured() bool {
	return a.APIKey != "" && a.AssistantID != ""
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("db_host", cfg.Database.Host),
		slog.Bool("assistant_configured", cfg.Assistant.IsConfigured()),
	)

	return cfg, nil
}
