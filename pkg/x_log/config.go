package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Config ----------

// Config controls where log lines go and how they look.
type Config struct {
	Level       string `json:"level"`        // debug, info, warn, error
	Format      string `json:"format"`       // console or json
	LogFile     string `json:"log_file"`     // rotated file target
	ToConsole   bool   `json:"to_console"`   // write to stderr
	ToFile      bool   `json:"to_file"`      // write to LogFile
	ColoredFile bool   `json:"colored_file"` // keep ANSI styling in the file
	Style       string `json:"style"`        // dark or light
	MaxSize     int    `json:"max_size"`     // MB before rotation
	MaxBackups  int    `json:"max_backups"`  // rotated files kept
	MaxAge      int    `json:"max_age"`      // days a rotated file is kept
	Compress    bool   `json:"compress"`     // gzip rotated files
}

//
// ---------- Defaults ----------

const defaultConfigPath = "./xlog.json"

var defaultConfig = Config{
	Level:       "info",
	Format:      "console",
	LogFile:     "logs/xtrie.log",
	ToConsole:   true,
	ToFile:      false,
	ColoredFile: false,
	Style:       "dark",
	MaxSize:     10, // MB
	MaxBackups:  5,  // rotated files
	MaxAge:      7,  // days
	Compress:    true,
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() Config {
	return defaultConfig
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("XLOG_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("read log config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse log config %s: %w", path, err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

//
// ---------- Defaults Fill ----------

// ApplyDefaults fills missing config values from the defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.Format == "" {
		cfg.Format = defaultConfig.Format
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
	if !cfg.ToConsole && !cfg.ToFile {
		cfg.ToConsole = true
	}
}
