package models

import "time"

// CachedAnalysis is a stored analysis result, keyed by entity, mode and season
type CachedAnalysis struct {
	Key       string `boltholdKey:"Key"`
	Mode      Mode   `boltholdIndex:"Mode"`
	Payload   []byte // JSON encoded report
	CreatedAt time.Time
	ExpiresAt time.Time `boltholdIndex:"ExpiresAt"`
}

// Expired reports whether the entry is past its expiry at now
func (c *CachedAnalysis) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
