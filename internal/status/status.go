// Package status tracks long-running analysis jobs through the shared
// cache, so batch progress can be inspected while a run is underway.
package status

import (
	"encoding/json"
	"fmt"

	"github.com/pkoval/redline/internal/cache"
)

// Job states.
const (
	StatePending    = "pending"
	StateProcessing = "processing"
	StateCompleted  = "completed"
	StateFailed     = "failed"
)

// Record is one job's progress snapshot.
type Record struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"` // 0-100
	Message  string `json:"message"`
}

// Store reads and writes job status records with a one hour TTL.
type Store struct {
	cache cache.Cache
}

// NewStore creates a status store over the given cache.
func NewStore(c cache.Cache) *Store {
	return &Store{cache: c}
}

// Set records a job's state. Progress is clamped to [0, 100].
func (s *Store) Set(id, state string, progress int, message string) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	data, err := json.Marshal(Record{Status: state, Progress: progress, Message: message})
	if err != nil {
		return fmt.Errorf("marshal status record: %w", err)
	}
	return s.cache.Set(cache.StatusKey(id), data, cache.StatusTTL)
}

// Get returns a job's latest record, or false when none is known.
func (s *Store) Get(id string) (*Record, bool) {
	data, ok := s.cache.Get(cache.StatusKey(id))
	if !ok {
		return nil, false
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false
	}
	return &rec, true
}

// Clear removes a job's record.
func (s *Store) Clear(id string) error {
	return s.cache.Delete(cache.StatusKey(id))
}
