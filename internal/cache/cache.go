// Package cache stores marshaled analysis reports so repeated runs over
// identical input text skip the pipeline.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/argus-nlp/argus/internal/model"
)

// Cache is a byte-level cache with per-entry TTL
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the raw input text. Identical text always
// maps to the same key, which is what makes cached reports safe: the
// pipeline is deterministic over its input.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "argus:v1:" + hex.EncodeToString(hash[:])
}

// ReportCache wraps a Cache with report marshaling
type ReportCache struct {
	backend Cache
	ttl     time.Duration
}

// NewReportCache creates a report cache over the given backend
func NewReportCache(backend Cache, ttl time.Duration) *ReportCache {
	return &ReportCache{backend: backend, ttl: ttl}
}

// Get returns the cached report for the input text, if any
func (r *ReportCache) Get(text string) (*model.Report, bool) {
	data, found := r.backend.Get(Key(text))
	if !found {
		return nil, false
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		// Corrupt entry: drop it and treat as a miss
		_ = r.backend.Delete(Key(text))
		return nil, false
	}
	return &report, true
}

// Set stores the report for the input text
func (r *ReportCache) Set(text string, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.backend.Set(Key(text), data, r.ttl)
}
