package session

import (
	"errors"
	"sync"
	"time"

	"github.com/aaronromeo/wodtimer/internal/id"
)

var ErrNotFound = errors.New("session not found")

// Store is an in-memory session map safe for concurrent handlers. Sessions
// go in and out as copies.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	seq      uint64
	now      func() time.Time
}

type StoreOption func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{sessions: map[string]*Session{}, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session with one round.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var sid string
	for {
		s.seq++
		sid = id.SessionID(now, id.Seed(now, s.seq))
		if _, taken := s.sessions[sid]; !taken {
			break
		}
	}
	sess := New(sid, now)
	s.sessions[sid] = sess
	return sess.clone()
}

func (s *Store) Get(sid string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.clone(), nil
}

// Update runs fn on the stored session under the write lock. If fn returns an
// error the session is left unchanged.
func (s *Store) Update(sid string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, ErrNotFound
	}
	work := sess.clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	work.UpdatedAt = s.now()
	s.sessions[sid] = work
	return work.clone(), nil
}

func (s *Store) Delete(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sid]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, sid)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
