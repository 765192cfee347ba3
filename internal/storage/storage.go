package storage

import (
	"sync"

	"github.com/brandkit-studio/brandkit/internal/models"
)

// SessionStore keeps generation sessions in memory for the lifetime of the
// server process. The generation engine itself stays stateless; this lives
// at the handler layer only.
type SessionStore struct {
	sessions map[string]*models.GenerationSession
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.GenerationSession),
	}
}

func (s *SessionStore) Get(sessionID string) (*models.GenerationSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *models.GenerationSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

func (s *SessionStore) GetAll() map[string]*models.GenerationSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.GenerationSession, len(s.sessions))
	for k, v := range s.sessions {
		result[k] = v
	}
	return result
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
