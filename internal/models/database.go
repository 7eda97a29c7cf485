package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// ErrNotFound is returned when no analysis is stored under a key
var ErrNotFound = bolthold.ErrNotFound

// Database wraps the bolthold store
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// UpsertAnalysis stores an analysis, replacing any previous entry under the same key
func (db *Database) UpsertAnalysis(analysis *CachedAnalysis) error {
	analysis.CreatedAt = time.Now()
	return db.store.Upsert(analysis.Key, analysis)
}

// GetAnalysis retrieves an unexpired analysis by key
func (db *Database) GetAnalysis(key string) (*CachedAnalysis, error) {
	var analysis CachedAnalysis
	if err := db.store.Get(key, &analysis); err != nil {
		return nil, err
	}
	if analysis.Expired(time.Now()) {
		return nil, ErrNotFound
	}
	return &analysis, nil
}

// DeleteExpiredAnalyses removes every entry that expired before now and returns how many were removed
func (db *Database) DeleteExpiredAnalyses(now time.Time) (int, error) {
	var expired []*CachedAnalysis
	if err := db.store.Find(&expired, bolthold.Where("ExpiresAt").Le(now)); err != nil {
		return 0, err
	}

	for _, analysis := range expired {
		if err := db.store.Delete(analysis.Key, &CachedAnalysis{}); err != nil && !errors.Is(err, bolthold.ErrNotFound) {
			return 0, err
		}
	}

	return len(expired), nil
}

// CountAnalyses returns the number of stored entries, expired or not
func (db *Database) CountAnalyses() (int, error) {
	var all []*CachedAnalysis
	if err := db.store.Find(&all, nil); err != nil {
		return 0, err
	}
	return len(all), nil
}
