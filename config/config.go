// file: xtrie/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/rskv-p/xtrie/pkg/x_log"
	"github.com/rskv-p/xtrie/pkg/x_trie"
)

// Config holds the settings shared by every xtrie command.
type Config struct {
	Variant string        `json:"variant"`
	Log     x_log.Config  `json:"log"`
	HTTP    HTTPSettings  `json:"http"`
	NATS    NATSSettings  `json:"nats"`
	Bench   BenchSettings `json:"bench"`
}

// HTTPSettings configures the REST and websocket front end.
type HTTPSettings struct {
	Enabled           bool          `json:"enabled"`
	Addr              string        `json:"addr"`
	AuthEnabled       bool          `json:"auth_enabled"`
	JWTSecret         string        `json:"jwt_secret"`
	AdminUser         string        `json:"admin_user"`
	AdminPasswordHash string        `json:"admin_password_hash"` // bcrypt
	TokenTTL          time.Duration `json:"token_ttl"`
	ReadTimeout       time.Duration `json:"read_timeout"`
}

// NATSSettings configures the request/reply front end.
type NATSSettings struct {
	Enabled    bool          `json:"enabled"`
	URL        string        `json:"url"`
	Embedded   bool          `json:"embedded"`
	Host       string        `json:"host"`
	Port       int           `json:"port"`
	Subject    string        `json:"subject"`
	QueueGroup string        `json:"queue_group"`
	Timeout    time.Duration `json:"timeout"`
}

// BenchSettings configures the benchmark harness.
type BenchSettings struct {
	OutDir    string `json:"out_dir"`
	Runs      int    `json:"runs"`
	Seed      uint64 `json:"seed"`
	Store     bool   `json:"store"`
	DBDialect string `json:"db_dialect"` // sqlite or postgres
	DSN       string `json:"dsn"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		Variant: x_trie.VariantIndexed.String(),
		Log:     x_log.DefaultConfig(),
		HTTP: HTTPSettings{
			Enabled:     true,
			Addr:        ":8080",
			AuthEnabled: false,
			AdminUser:   "admin",
			TokenTTL:    time.Hour,
			ReadTimeout: 10 * time.Second,
		},
		NATS: NATSSettings{
			Enabled:    false,
			URL:        "nats://127.0.0.1:4222",
			Embedded:   false,
			Host:       "127.0.0.1",
			Port:       4222,
			Subject:    "trie",
			QueueGroup: "xtrie",
			Timeout:    2 * time.Second,
		},
		Bench: BenchSettings{
			OutDir:    ".",
			Runs:      3,
			Seed:      1,
			DBDialect: "sqlite",
			DSN:       "bench.db",
		},
	}
}

// Load reads a JSON config file on top of the defaults. ${VAR}
// references are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = replaceEnvVars(data)

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}

	cfg := Default()
	if err := decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// LoadFromEnv loads config from environment using prefix.
func LoadFromEnv(prefix string) *Config {
	cfg := Default()
	env := Env(prefix)

	cfg.Variant = env.Str("VARIANT", cfg.Variant)

	cfg.Log.Level = env.Str("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = env.Str("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.LogFile = env.Str("LOG_FILE", cfg.Log.LogFile)
	cfg.Log.ToFile = env.Bool("LOG_TO_FILE", cfg.Log.ToFile)

	cfg.HTTP.Enabled = env.Bool("HTTP_ENABLED", cfg.HTTP.Enabled)
	cfg.HTTP.Addr = env.Str("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.AuthEnabled = env.Bool("AUTH_ENABLED", cfg.HTTP.AuthEnabled)
	cfg.HTTP.JWTSecret = env.Str("JWT_SECRET", cfg.HTTP.JWTSecret)
	cfg.HTTP.AdminUser = env.Str("ADMIN_USER", cfg.HTTP.AdminUser)
	cfg.HTTP.AdminPasswordHash = env.Str("ADMIN_PASSWORD_HASH", cfg.HTTP.AdminPasswordHash)
	cfg.HTTP.TokenTTL = env.Duration("TOKEN_TTL", cfg.HTTP.TokenTTL)

	cfg.NATS.Enabled = env.Bool("NATS_ENABLED", cfg.NATS.Enabled)
	cfg.NATS.URL = env.Str("NATS_URL", cfg.NATS.URL)
	cfg.NATS.Embedded = env.Bool("NATS_EMBEDDED", cfg.NATS.Embedded)
	cfg.NATS.Host = env.Str("NATS_HOST", cfg.NATS.Host)
	cfg.NATS.Port = env.Int("NATS_PORT", cfg.NATS.Port)
	cfg.NATS.Subject = env.Str("NATS_SUBJECT", cfg.NATS.Subject)
	cfg.NATS.Timeout = env.Duration("NATS_TIMEOUT", cfg.NATS.Timeout)

	cfg.Bench.OutDir = env.Str("BENCH_OUT_DIR", cfg.Bench.OutDir)
	cfg.Bench.Runs = env.Int("BENCH_RUNS", cfg.Bench.Runs)
	cfg.Bench.Seed = env.Uint64("BENCH_SEED", cfg.Bench.Seed)
	cfg.Bench.Store = env.Bool("BENCH_STORE", cfg.Bench.Store)
	cfg.Bench.DBDialect = env.Str("BENCH_DB_DIALECT", cfg.Bench.DBDialect)
	cfg.Bench.DSN = env.Str("BENCH_DSN", cfg.Bench.DSN)

	return cfg
}

// LoadWithFallback loads from XTRIE_CONFIG or env vars.
func LoadWithFallback() *Config {
	if path := os.Getenv("XTRIE_CONFIG"); path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return LoadFromEnv("XTRIE_")
}

// MustLoadFromEnv panics if config is invalid.
func MustLoadFromEnv() *Config {
	cfg := LoadWithFallback()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}

// Validate checks config for required values.
func (cfg *Config) Validate() error {
	var missing []string
	if _, err := x_trie.ParseVariant(cfg.Variant); err != nil {
		missing = append(missing, fmt.Sprintf("variant(%s)", cfg.Variant))
	}
	if cfg.HTTP.Enabled && cfg.HTTP.Addr == "" {
		missing = append(missing, "http.addr")
	}
	if cfg.HTTP.AuthEnabled {
		if cfg.HTTP.JWTSecret == "" {
			missing = append(missing, "http.jwt_secret")
		}
		if cfg.HTTP.AdminUser == "" || cfg.HTTP.AdminPasswordHash == "" {
			missing = append(missing, "http.admin_user/http.admin_password_hash")
		}
	}
	if cfg.NATS.Enabled {
		if cfg.NATS.Subject == "" {
			missing = append(missing, "nats.subject")
		}
		if !cfg.NATS.Embedded && cfg.NATS.URL == "" {
			missing = append(missing, "nats.url")
		}
		if cfg.NATS.Embedded && (cfg.NATS.Port < -1 || cfg.NATS.Port > 65535) {
			missing = append(missing, fmt.Sprintf("nats.port(%d)", cfg.NATS.Port))
		}
	}
	if cfg.Bench.Runs <= 0 {
		missing = append(missing, fmt.Sprintf("bench.runs(%d)", cfg.Bench.Runs))
	}
	switch strings.ToLower(cfg.Bench.DBDialect) {
	case "sqlite", "postgres":
	default:
		missing = append(missing, fmt.Sprintf("bench.db_dialect(%s)", cfg.Bench.DBDialect))
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg.redacted(), "", "  ")
	return string(data)
}

func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg.redacted(), "", "  ")
	_, _ = w.Write(data)
}

func (cfg *Config) redacted() *Config {
	c := *cfg
	if c.HTTP.JWTSecret != "" {
		c.HTTP.JWTSecret = "***"
	}
	return &c
}

// replaceEnvVars replaces ${ENV_VAR} in JSON with values from os.Getenv
func replaceEnvVars(data []byte) []byte {
	s := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})
	return []byte(s)
}
