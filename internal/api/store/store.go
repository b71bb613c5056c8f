// Package store keeps completed optimization reports in memory so the API
// can serve follow-up GET requests by ID.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"inventory-sim/internal/pipeline"
)

type entry struct {
	report    *pipeline.Report
	expiresAt time.Time
}

// ResultStore is an in-memory TTL map of optimization reports.
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]entry
	ttl   time.Duration
	seq   uint64
}

func New(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &ResultStore{
		store: make(map[string]entry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a report and returns its generated ID.
func (s *ResultStore) Put(report *pipeline.Report) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	id := newID(s.seq)
	s.store[id] = entry{
		report:    report,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get returns a stored report if present and not expired.
func (s *ResultStore) Get(id string) (*pipeline.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.store[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.report, true
}

func (s *ResultStore) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, e := range s.store {
			if now.After(e.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}

func newID(seq uint64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d_%d", time.Now().UnixNano(), seq)))
	return hex.EncodeToString(sum[:])[:12]
}
