package cache

import (
	"time"

	"github.com/amaumene/mellab/internal/models"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Memory keeps analyses in process memory until their TTL elapses
type Memory struct {
	store  *gocache.Cache
	logger *logrus.Logger
}

// NewMemory creates an in-memory analysis cache. Expired entries are swept
// every ttl/2 (at least once a minute).
func NewMemory(ttl time.Duration, logger *logrus.Logger) *Memory {
	cleanup := ttl / 2
	if cleanup <= 0 || cleanup > time.Minute {
		cleanup = time.Minute
	}
	return &Memory{
		store:  gocache.New(ttl, cleanup),
		logger: logger,
	}
}

// Get returns the payload stored under key
func (m *Memory) Get(key string) ([]byte, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	payload, ok := v.([]byte)
	return payload, ok
}

// Set stores payload under key with the default TTL
func (m *Memory) Set(key string, mode models.Mode, payload []byte) {
	m.store.SetDefault(key, payload)
	m.logger.WithFields(logrus.Fields{
		"key":  key,
		"mode": mode,
	}).Debug("Cached analysis in memory")
}

// Len returns the number of entries, including expired ones not yet swept
func (m *Memory) Len() int {
	return m.store.ItemCount()
}
