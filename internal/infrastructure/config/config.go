package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/emiliopalmerini/ufcompare/internal/adapters/logger"
	"github.com/emiliopalmerini/ufcompare/internal/adapters/otel"
)

// DefaultDataPath is the CSV looked up next to the binary when nothing is configured.
const DefaultDataPath = "ufc-fighters-statistics-CLEANED.csv"

// Config is the process configuration read from the environment.
type Config struct {
	DataPath        string        `env:"UFC_DATA_PATH"`
	Port            int           `env:"UFC_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"UFC_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Log  Log
	Otel Otel
}

// Log configures structured logging.
type Log struct {
	File  string `env:"UFC_LOG_FILE"`
	JSON  bool   `env:"UFC_LOG_JSON" envDefault:"false"`
	Debug bool   `env:"UFC_LOG_DEBUG" envDefault:"false"`
}

// Otel configures the OTLP metrics exporter.
type Otel struct {
	Enabled  bool   `env:"UFC_OTEL_ENABLED" envDefault:"false"`
	Endpoint string `env:"UFC_OTEL_ENDPOINT"`
	Insecure bool   `env:"UFC_OTEL_INSECURE" envDefault:"false"`
}

// Load parses the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid UFC_PORT: %d", cfg.Port)
	}
	return &cfg, nil
}

// Logger returns the logger adapter configuration.
func (l Log) Logger() logger.Config {
	return logger.Config{File: l.File, JSON: l.JSON, Debug: l.Debug}
}

// Exporter returns the OTEL adapter configuration.
func (o Otel) Exporter() otel.Config {
	return otel.Config{Enabled: o.Enabled, Endpoint: o.Endpoint, Insecure: o.Insecure}
}
