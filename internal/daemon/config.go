package daemon

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// ProcessConfig is the daemon's process-level configuration, read from the
// environment at startup. Runtime defaults that clients may change live in
// Config and are served over /config instead.
type ProcessConfig struct {
	Addr       string `env:"QUADVIEW_ADDR" envDefault:":8080"`
	OutputRoot string `env:"OUTPUT_ROOT" envDefault:"output"`
	Stateless  bool   `env:"STATELESS_MODE" envDefault:"false"`
}

// LoadProcessConfig parses the environment into a ProcessConfig.
func LoadProcessConfig() (*ProcessConfig, error) {
	cfg := &ProcessConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
