package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Env reads typed values from environment variables sharing a prefix.
// Unset, empty or unparsable variables yield the fallback.
type Env string

func lookup[T any](key string, fallback T, parse func(string) (T, error)) T {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	out, err := parse(v)
	if err != nil {
		return fallback
	}
	return out
}

func (e Env) key(name string) string { return string(e) + name }

func (e Env) Str(name, fallback string) string {
	return lookup(e.key(name), fallback, func(s string) (string, error) { return s, nil })
}

func (e Env) Int(name string, fallback int) int {
	return lookup(e.key(name), fallback, strconv.Atoi)
}

func (e Env) Uint64(name string, fallback uint64) uint64 {
	return lookup(e.key(name), fallback, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

func (e Env) Duration(name string, fallback time.Duration) time.Duration {
	return lookup(e.key(name), fallback, time.ParseDuration)
}

// Bool accepts 1/0, true/false, yes/no and on/off.
func (e Env) Bool(name string, fallback bool) bool {
	return lookup(e.key(name), fallback, parseBool)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, strconv.ErrSyntax
}
