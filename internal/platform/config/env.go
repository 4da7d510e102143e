// Package config holds shared configuration helpers for portfolio.space commands.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by portfolio.space.
const EnvPrefix = "PORTFOLIO_SPACE_"

// ParseEnv loads configuration from the process environment into target.
//
// Struct tags name variables without the shared prefix, so a field tagged
// `env:"HTTP_ADDR"` reads PORTFOLIO_SPACE_HTTP_ADDR.
func ParseEnv(target any) error {
	return parse(target, env.Options{Prefix: EnvPrefix})
}

// ParseEnvMap loads configuration from an explicit variable map instead of
// the process environment. Keys carry the full prefixed name.
func ParseEnvMap(target any, environment map[string]string) error {
	if environment == nil {
		environment = map[string]string{}
	}
	return parse(target, env.Options{Prefix: EnvPrefix, Environment: environment})
}

func parse(target any, opts env.Options) error {
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
