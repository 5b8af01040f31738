// Package session keeps wizard sessions in process memory. A session is
// dropped once it has been idle for longer than the configured TTL; nothing
// survives a restart.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"intake/internal/application/store"
	"intake/internal/application/validation"
	"intake/internal/wizard"
	"intake/pkg/platform/sentinel"
	"intake/pkg/requestcontext"
)

// Session is one applicant's wizard.
type Session struct {
	ID        uuid.UUID
	Wizard    *wizard.Wizard
	Location  *wizard.Location
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// New builds a session with a blank record positioned at the first step.
func New(now time.Time, v *validation.Validator) *Session {
	loc := wizard.NewLocation()
	return &Session{
		ID:        uuid.New(),
		Wizard:    wizard.New(store.New(), loc, v),
		Location:  loc,
		CreatedAt: now,
		lastSeen:  now,
	}
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen()) > ttl
}

// InMemoryStore holds sessions keyed by id.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

func (s *InMemoryStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

// Find returns a live session and marks it as seen at the request time.
// Sessions idle past the TTL are reported as not found even before the
// janitor removes them.
func (s *InMemoryStore) Find(ctx context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, sentinel.ErrNotFound)
	}
	now := requestcontext.Now(ctx)
	if session.expired(now, s.ttl) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, fmt.Errorf("session %s %w: %w", id, sentinel.ErrExpired, sentinel.ErrNotFound)
	}
	session.touch(now)
	return session, nil
}

// DeleteExpired removes every session idle past the TTL at now and returns
// how many were removed.
func (s *InMemoryStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.expired(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweeper is the subset of the store the janitor needs.
type Sweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Count() int
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
// onSweep, when non-nil, receives the number of sessions removed per sweep.
func RunJanitor(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *slog.Logger, onSweep func(int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			removed, err := sweeper.DeleteExpired(ctx, now)
			if err != nil {
				logger.ErrorContext(ctx, "session sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				logger.InfoContext(ctx, "expired sessions removed", "count", removed, "active", sweeper.Count())
			}
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}
