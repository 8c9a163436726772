// Package config loads the application configuration from environment
// variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Redis holds the connection settings of the Redis instance backing
// subscription and observation storage.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Username string `envconfig:"REDIS_USERNAME"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Config is the full application configuration.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TelegramToken authenticates the bot used to deliver notifications.
	TelegramToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`

	// KaspaAPIBaseURL is the base URL of the Kaspa REST API.
	KaspaAPIBaseURL string `envconfig:"KASPA_API_BASE_URL" default:"https://api.kaspa.org"`

	// PollInterval is the interval between wallet activity checks.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"60s"`

	// Timezone is the IANA location used when rendering transaction times.
	Timezone string `envconfig:"TIMEZONE" default:"US/Eastern"`

	// OtelExporterEndpoint enables OpenTelemetry export when set (e.g.
	// "localhost:4317"). Telemetry stays disabled when empty.
	OtelExporterEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	Redis Redis
}

// Load reads the configuration from the environment, applying defaults and
// enforcing required variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
