// Package store persists the ledger snapshot as a single row keyed by a
// fixed key. Every save is a whole-snapshot overwrite; there are no partial
// writes and no row-per-entity schema to keep consistent.
package store

import (
	"encoding/json"
	"errors"
	"time"

	apperrors "expenseflow/internal/errors"
	"expenseflow/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the persisted form of a snapshot.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName sets the table name for GORM.
func (Record) TableName() string { return "snapshots" }

// Store reads and writes the ledger snapshot.
type Store struct {
	db  *gorm.DB
	key string
}

// New creates a Store persisting under the given key.
func New(db *gorm.DB, key string) *Store {
	return &Store{db: db, key: key}
}

// Load returns the persisted snapshot. If none exists yet, it synthesizes
// the default snapshot, persists it, and returns it. A row that cannot be
// parsed is a fatal persistence failure: the caller has no recovery path.
func (s *Store) Load() (*models.Snapshot, error) {
	var rec Record
	err := s.db.Where("key = ?", s.key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := models.DefaultSnapshot()
		if saveErr := s.Save(fresh); saveErr != nil {
			return nil, saveErr
		}
		return fresh, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(rec.Data, &snap); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return &snap, nil
}

// Save serializes the full snapshot and upserts the single row.
func (s *Store) Save(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	rec := Record{Key: s.key, Data: data, UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return nil
}
