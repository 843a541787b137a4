package memory

import (
	"sync"

	"github.com/coursier/coursier-agent/internal/domain"
)

// SessionStore keeps one session per user in memory for the lifetime of the
// process. Get and Put exchange copies, so a caller mutating a session in
// flight never leaks partial state into the store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.UserID]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.UserID]*domain.Session),
	}
}

func (s *SessionStore) Get(userID domain.UserID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	cp := *sess
	return &cp, nil
}

// Put stores the session, replacing any previous one for the same user.
func (s *SessionStore) Put(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	s.sessions[session.UserID] = &cp
	return nil
}

func (s *SessionStore) Delete(userID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
