package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/dhansakhi/backend/internal/assistant"
)

// Store keeps live sessions in memory. Nothing is persisted: a session exists
// from creation until idle eviction or process exit.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*assistant.Session
	ttl      time.Duration
	logger   *slog.Logger
}

// NewStore creates a store evicting sessions idle for longer than ttl.
func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		sessions: make(map[uuid.UUID]*assistant.Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Add registers a session.
func (s *Store) Add(sess *assistant.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns the session and marks it active.
func (s *Store) Get(id uuid.UUID) (*assistant.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		sess.Touch()
	}
	return sess, ok
}

// Remove drops a session.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle past the TTL and returns how many were removed.
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs periodic eviction until the context is canceled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if removed := s.Sweep(now); removed > 0 {
					s.logger.Info("evicted idle sessions", slog.Int("count", removed))
				}
			}
		}
	}()
}
