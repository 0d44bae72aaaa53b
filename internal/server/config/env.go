package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays the variables named in Config's env tags. Unset
// variables leave the current value alone; list variables are
// comma-separated. A malformed value panics, as with JSON and flags.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
