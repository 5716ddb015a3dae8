// Package config loads the process-level settings of walletlink from the
// environment. Every variable is prefixed with WALLETLINK_, for example
// WALLETLINK_LOG_LEVEL or WALLETLINK_EXPLORER_TIMEOUT.
//
// Per-run inputs (wallets, caps, proxy, output files) are command-line flags
// and are not part of this configuration.
package config

import (
	"time"

	"github.com/gabapcia/walletlink/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "walletlink"

// Config is the root configuration.
type Config struct {
	LogLevel  string    `split_words:"true" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	Telemetry Telemetry `validate:"required"`
	Explorer  Explorer  `validate:"required"`
	Scan      Scan      `validate:"required"`
	IPAPI     IPAPI     `envconfig:"ipapi" validate:"required"`
}

// Telemetry controls the OpenTelemetry exporters. The OTLP endpoint itself is
// read by the exporters from the standard OTEL_EXPORTER_OTLP_* variables.
type Telemetry struct {
	Enabled     bool   `default:"false"`
	ServiceName string `split_words:"true" default:"walletlink" validate:"required"`
}

// Explorer configures the block-explorer client.
type Explorer struct {
	BaseURL           string        `split_words:"true" default:"https://etherscan.io" validate:"required,url"`
	UserAgent         string        `split_words:"true" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" validate:"required"`
	Timeout           time.Duration `default:"10s" validate:"gt=0"`
	RetryMax          int           `split_words:"true" default:"0" validate:"min=0"`
	HandshakeAttempts uint          `split_words:"true" default:"1" validate:"min=1"`
}

// Scan configures the per-wallet page fetch.
type Scan struct {
	MaxConcurrency int `split_words:"true" default:"50" validate:"min=1"`
}

// IPAPI configures the proxy verification lookup.
type IPAPI struct {
	URL     string        `default:"http://ip-api.com/json/" validate:"required,url"`
	Timeout time.Duration `default:"10s" validate:"gt=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
