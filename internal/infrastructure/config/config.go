package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds fairctl configuration loaded from environment variables.
type Config struct {
	// Backend the CLI talks to.
	APIBaseURL string `envconfig:"FAIRAI_API_BASE_URL" default:"http://localhost:5000"`

	// Timeout for auth and other small JSON calls.
	HTTPTimeout time.Duration `envconfig:"FAIRAI_HTTP_TIMEOUT" default:"15s"`
	// Evaluation uploads can run for minutes on the backend side.
	EvaluateTimeout time.Duration `envconfig:"FAIRAI_EVALUATE_TIMEOUT" default:"2m"`

	// Path of the local history database. Empty means the XDG data dir.
	HistoryDB string `envconfig:"FAIRAI_HISTORY_DB"`

	Env string `envconfig:"FAIRAI_ENV" default:"dev"`
}

// OTEL holds OTLP exporter configuration.
type OTEL struct {
	Endpoint string `envconfig:"FAIRAI_OTEL_ENDPOINT"`
	Enabled  bool   `envconfig:"FAIRAI_OTEL_ENABLED"`
	Insecure bool   `envconfig:"FAIRAI_OTEL_INSECURE"`
}

// Load loads CLI configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOTEL loads OTLP exporter configuration from environment variables.
func LoadOTEL() (OTEL, error) {
	var cfg OTEL
	if err := envconfig.Process("", &cfg); err != nil {
		return OTEL{}, err
	}
	return cfg, nil
}
