package session

import (
	"sync"
	"time"

	"grandehotel-core/internal/domain/draft"
	"grandehotel-core/internal/pkg/clock"

	"github.com/google/uuid"
)

// Store holds one draft aggregator per booking session. The aggregator
// itself is not safe for concurrent mutation, so every access goes through
// WithDraft, which serializes callers per session key. Idle sessions are
// evicted after ttl.
type Store struct {
	mu       sync.Mutex
	clock    clock.Clock
	ttl      time.Duration
	sessions map[uuid.UUID]*entry
}

type entry struct {
	mu        sync.Mutex
	agg       *draft.Aggregator
	touchedAt time.Time
}

func NewStore(clk clock.Clock, ttl time.Duration) *Store {
	return &Store{
		clock:    clk,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*entry),
	}
}

// WithDraft runs fn against the session's aggregator, creating it on first
// use. The session lock is held for the duration of fn.
func (s *Store) WithDraft(key uuid.UUID, fn func(*draft.Aggregator) error) error {
	e := s.acquire(key)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.agg)
}

// Clear drops the session, typically after a successful finalize.
func (s *Store) Clear(key uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

func (s *Store) acquire(key uuid.UUID) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictStale(now)

	e, ok := s.sessions[key]
	if !ok {
		e = &entry{agg: draft.NewAggregator()}
		s.sessions[key] = e
	}
	e.touchedAt = now
	return e
}

func (s *Store) evictStale(now time.Time) {
	for key, e := range s.sessions {
		if now.Sub(e.touchedAt) > s.ttl {
			delete(s.sessions, key)
		}
	}
}
