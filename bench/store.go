package bench

import (
	"time"

	"github.com/nats-io/nuid"
	"github.com/rskv-p/xtrie/pkg/x_db"
)

// Record is one persisted benchmark row.
type Record struct {
	ID             uint   `gorm:"primaryKey"`
	RunID          string `gorm:"index;size:32"`
	Experiment     string `gorm:"index;size:32"`
	Param          string `gorm:"size:64"`
	Variant        string `gorm:"size:16"`
	Runs           int
	ConstructionNS int64
	QueryNS        int64
	FinalSize      int64
	Words          int64
	CreatedAt      time.Time
}

func (Record) TableName() string { return "bench_results" }

// Store persists benchmark rows through gorm.
type Store struct {
	db *x_db.DB
}

// OpenStore opens the database and migrates the results table.
func OpenStore(cfg x_db.Config) (*Store, error) {
	db, err := x_db.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(&Record{}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewRunID returns a fresh identifier grouping the rows of one invocation.
func NewRunID() string { return nuid.Next() }

// Save writes rows under runID.
func (s *Store) Save(runID string, runs int, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	recs := make([]Record, len(rows))
	for i, r := range rows {
		recs[i] = Record{
			RunID:          runID,
			Experiment:     r.Experiment,
			Param:          r.Param,
			Variant:        r.Variant.String(),
			Runs:           runs,
			ConstructionNS: r.Construction.Nanoseconds(),
			QueryNS:        r.Query.Nanoseconds(),
			FinalSize:      int64(r.FinalSize),
			Words:          int64(r.Words),
		}
	}
	return s.db.Insert(&recs)
}

// Records returns the rows of runID in insertion order.
func (s *Store) Records(runID string) ([]Record, error) {
	var recs []Record
	err := s.db.Where("run_id = ?", runID).Order("id").Find(&recs).Error
	return recs, err
}

func (s *Store) Close() error { return s.db.Close() }
