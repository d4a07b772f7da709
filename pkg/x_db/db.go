package x_db

import (
	"fmt"

	"github.com/rskv-p/xtrie/pkg/x_log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

//---------------------
// DB
//---------------------

// DB wraps a gorm connection opened from a Config.
type DB struct {
	*gorm.DB
	Config Config
}

// Open connects to the configured backend. SQL statements are logged
// through x_log under the "xdb" module.
func Open(cfg Config) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Type {
	case DbSqlite:
		dialector = sqlite.Open(cfg.DSN)
	case DbPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database dialect: %s", cfg.Type)
	}

	zl := x_log.New("xdb")
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogAdapter(&zl, gormLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Type, err)
	}

	x_log.Debug().
		Str("driver", string(cfg.Type)).
		Str("module", "xdb").
		Msg("database opened")
	return &DB{DB: db, Config: cfg}, nil
}

// Migrate performs the database migration for the provided models.
func (d *DB) Migrate(models ...any) error {
	return d.AutoMigrate(models...)
}

// Insert writes records in batches inside one transaction.
func (d *DB) Insert(records any) error {
	return d.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(records, 200).Error
	})
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
