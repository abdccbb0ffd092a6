// Package memory implements an in-memory idempotency store.
package memory

import (
	"context"
	"sync"
	"time"

	"biltiflow/pkg/idempotency"
)

// sweepInterval bounds how often Put scans for expired entries.
const sweepInterval = time.Minute

type entry struct {
	rec       idempotency.Record
	expiresAt time.Time
}

// Store is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	now       func() time.Time
	entries   map[string]entry
	nextSweep time.Time
}

// NewStore returns an empty store using the wall clock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock returns an empty store using now as its clock.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{now: now, entries: make(map[string]entry)}
}

// Get returns the record for key unless it has expired.
func (s *Store) Get(ctx context.Context, key string) (idempotency.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return idempotency.Record{}, false, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return idempotency.Record{}, false, nil
	}
	return cloneRecord(e.rec), true, nil
}

// Put stores rec under key for ttl. Expired entries of other keys are
// dropped at most once per sweepInterval.
func (s *Store) Put(ctx context.Context, key string, rec idempotency.Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if !now.Before(s.nextSweep) {
		for k, e := range s.entries {
			if !now.Before(e.expiresAt) {
				delete(s.entries, k)
			}
		}
		s.nextSweep = now.Add(sweepInterval)
	}
	s.entries[key] = entry{rec: cloneRecord(rec), expiresAt: now.Add(ttl)}
	return nil
}

func cloneRecord(r idempotency.Record) idempotency.Record {
	r.Body = append([]byte(nil), r.Body...)
	return r
}
