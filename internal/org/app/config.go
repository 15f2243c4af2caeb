package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is populated from environment variables. QUORUM_TOKEN_SECRET is
// the only required setting; everything else has a development default.
type Config struct {
	TokenSecret string `env:"QUORUM_TOKEN_SECRET"`

	// BaseURL is the public origin placed in invitation accept links. It
	// doubles as the issuer claim on every token the service signs.
	BaseURL string `env:"QUORUM_BASE_URL" envDefault:"http://localhost:8080"`

	DatabaseFile string `env:"QUORUM_DATABASE_FILE" envDefault:"quorum.db"`

	// SMTP relay settings. With no host configured, invitation emails are
	// logged instead of sent.
	SMTPHost     string `env:"QUORUM_SMTP_HOST"`
	SMTPPort     int    `env:"QUORUM_SMTP_PORT" envDefault:"587"`
	SMTPFrom     string `env:"QUORUM_SMTP_FROM" envDefault:"noreply@localhost"`
	SMTPUsername string `env:"QUORUM_SMTP_USERNAME"`
	SMTPPassword string `env:"QUORUM_SMTP_PASSWORD"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads the environment and validates the required settings.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.TokenSecret == "" {
		return Config{}, errors.New("QUORUM_TOKEN_SECRET is required")
	}

	return cfg, nil
}
