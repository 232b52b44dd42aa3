package config

import (
	env "github.com/caarlos0/env/v11"
)

// parseEnv overlays Config fields from LINKHUB_-prefixed environment
// variables (see the env struct tags). Only variables that are actually set
// override earlier layers.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: "LINKHUB_"}); err != nil {
		panic(err)
	}
}
