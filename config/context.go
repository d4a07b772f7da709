package config

import (
	"context"
	"fmt"
)

type ctxKey struct{}

// WithContext stores cfg in ctx.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or the defaults.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	return Default()
}

// Resolve loads path when given, otherwise XTRIE_CONFIG or the XTRIE_
// environment, and validates the result.
func Resolve(path string) (*Config, error) {
	var cfg *Config
	if path != "" {
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		cfg = LoadWithFallback()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
