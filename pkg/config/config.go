package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const DefaultBaseURL = "https://www.dbschenker.com/nges-portal/api/public/tracking-public/shipments"

type Config struct {
	ListenAddr   string        `envconfig:"LISTEN_ADDR" default:":8080"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownWait time.Duration `envconfig:"SHUTDOWN_WAIT" default:"5s"`

	BaseURL        string        `envconfig:"TRACKING_BASE_URL" default:"https://www.dbschenker.com/nges-portal/api/public/tracking-public/shipments"`
	MaxRetries     int           `envconfig:"TRACKING_MAX_RETRIES" default:"10"`
	RequestTimeout time.Duration `envconfig:"TRACKING_REQUEST_TIMEOUT" default:"15s"`
	UserAgent      string        `envconfig:"TRACKING_USER_AGENT" default:"Mozilla/5.0"`

	SolverWorkers  int    `envconfig:"SOLVER_WORKERS" default:"0"`
	SolverMaxNonce uint64 `envconfig:"SOLVER_MAX_NONCE" default:"4294967296"`
}

func Parse() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate is also called after command-line overrides.
func (c Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, errors.New("TRACKING_BASE_URL is empty"))
	}
	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("TRACKING_MAX_RETRIES=%d must be >= 0", c.MaxRetries))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("TRACKING_REQUEST_TIMEOUT=%s must be positive", c.RequestTimeout))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
