// Package runstore is a gorm+SQLite archive of rating-search runs,
// mirroring the teacher's pkg/database connection pattern with
// Postgres swapped for an embedded SQLite file: this is an inner-loop
// tool, not a networked service, and the rating-search engine (spec.md
// §4.9) needs a queryable record of what was tried across potentially
// thousands of steps and restarts.
package runstore

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StepRecord is one row per rating-search step (spec.md §4.9's
// Propose->Simulate->Metric->{Accept|Reject|Restart} state machine).
type StepRecord struct {
	ID          uint   `gorm:"primaryKey"`
	SearchRunID string `gorm:"index"`
	Step        int
	RMSE        float64
	Accepted    bool
	Restarted   bool
	Thresh      float64
	StepSize    int
	CreatedAt   time.Time
}

// BestSnapshot is the single best-found rating set for a search run,
// written through UpsertBest; cmd/searchd upserts one at the end of
// each search batch.
type BestSnapshot struct {
	SearchRunID string `gorm:"primaryKey"`
	Step        int
	RMSE        float64
	RatingsJSON string // serialized per-player six-skill rating set
	UpdatedAt   time.Time
}

// Store wraps a gorm DB handle opened against a SQLite file.
type Store struct {
	db *gorm.DB
}

// Open connects to (creating if absent) the SQLite file at path and
// runs AutoMigrate for the run-archive schema.
func Open(path string, isDevelopment bool) (*Store, error) {
	logLevel := logger.Error
	if isDevelopment {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open run store: %w", err)
	}

	if err := db.AutoMigrate(&StepRecord{}, &BestSnapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run store: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordStep appends one step's outcome to the archive.
func (s *Store) RecordStep(rec StepRecord) error {
	rec.CreatedAt = time.Now().UTC()
	if err := s.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to record step: %w", err)
	}
	return nil
}

// UpsertBest replaces the best-snapshot row for a search run.
func (s *Store) UpsertBest(snap BestSnapshot) error {
	snap.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&snap).Error; err != nil {
		return fmt.Errorf("failed to upsert best snapshot: %w", err)
	}
	return nil
}

// Steps returns every recorded step for a search run, ordered by step
// number ascending (not by recording time).
func (s *Store) Steps(searchRunID string) ([]StepRecord, error) {
	var out []StepRecord
	if err := s.db.Where("search_run_id = ?", searchRunID).Order("step asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to load steps: %w", err)
	}
	return out, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
