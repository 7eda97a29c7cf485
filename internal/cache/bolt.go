package cache

import (
	"errors"
	"time"

	"github.com/amaumene/mellab/internal/models"
	"github.com/sirupsen/logrus"
)

// Bolt persists analyses in the bolthold store so they survive restarts
type Bolt struct {
	db     *models.Database
	ttl    time.Duration
	logger *logrus.Logger
}

// NewBolt creates an on-disk analysis cache on top of db
func NewBolt(db *models.Database, ttl time.Duration, logger *logrus.Logger) *Bolt {
	return &Bolt{
		db:     db,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the unexpired payload stored under key. Store errors count as a miss.
func (b *Bolt) Get(key string) ([]byte, bool) {
	analysis, err := b.db.GetAnalysis(key)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			b.logger.WithError(err).WithField("key", key).Warn("Failed to read cached analysis")
		}
		return nil, false
	}
	return analysis.Payload, true
}

// Set stores payload under key until the TTL elapses
func (b *Bolt) Set(key string, mode models.Mode, payload []byte) {
	analysis := &models.CachedAnalysis{
		Key:       key,
		Mode:      mode,
		Payload:   payload,
		ExpiresAt: time.Now().Add(b.ttl),
	}
	if err := b.db.UpsertAnalysis(analysis); err != nil {
		b.logger.WithError(err).WithField("key", key).Warn("Failed to cache analysis")
		return
	}
	b.logger.WithFields(logrus.Fields{
		"key":  key,
		"mode": mode,
	}).Debug("Cached analysis on disk")
}

// Prune removes expired entries
func (b *Bolt) Prune() (int, error) {
	return b.db.DeleteExpiredAnalyses(time.Now())
}
