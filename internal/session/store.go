// Package session holds challenge sessions in memory, one per browser tab.
// Sessions live only as long as the process, there is no durability and no
// cross-tab synchronization, matching the tool's single-session model.
package session

import (
	"errors"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/funfight/challenge-tracker/internal/domain"
)

var ErrNotFound = errors.New("session not found")

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*domain.Session)}
}

// Create registers the session under a fresh nanoid and returns the ID.
func (s *Store) Create(sess *domain.Session) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.ID = id
	s.sessions[id] = sess
	return id, nil
}

// Get returns a deep copy of the session state. Callers mutate through
// Update, never through the returned value; in-place edits under Update must
// not reach a copy handed out earlier.
func (s *Store) Get(id string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, ErrNotFound
	}
	return sess.Clone(), nil
}

// Update applies fn to the session under the write lock. An error from fn
// leaves the stored session as fn left it, so fn must not partially mutate
// before failing.
func (s *Store) Update(id string, fn func(*domain.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(sess)
}

// Delete clears the session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
