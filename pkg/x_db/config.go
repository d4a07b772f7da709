package x_db

import (
	"fmt"
	"strings"

	"gorm.io/gorm/logger"
)

//---------------------
// Database Config
//---------------------

// Dialect names a supported SQL backend.
type Dialect string

const (
	DbSqlite   Dialect = "sqlite"
	DbPostgres Dialect = "postgres"
)

// Config describes how to reach the database.
type Config struct {
	Type     Dialect // sqlite or postgres
	DSN      string  // file path for sqlite, keyword/value or URL for postgres
	LogLevel string  // silent, error, warn, info
}

// ParseDialect maps a dialect name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return DbSqlite, nil
	case "postgres", "postgresql", "pg":
		return DbPostgres, nil
	}
	return "", fmt.Errorf("unsupported database dialect: %s", s)
}

func gormLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}
