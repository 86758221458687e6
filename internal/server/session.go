package server

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/clauselens/clauselens/internal/llm"
)

const sessionCookie = "clauselens_session"

// SessionStore holds at most one extraction result per browser session.
// Uploading a new document replaces the previous result; nothing is ever
// written to durable storage.
type SessionStore struct {
	mu      sync.RWMutex
	results map[string]*llm.ExtractionResult
}

func NewSessionStore() *SessionStore {
	return &SessionStore{results: make(map[string]*llm.ExtractionResult)}
}

// Put stores the session's current result, replacing any previous one.
func (s *SessionStore) Put(sessionID string, result *llm.ExtractionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[sessionID] = result
}

// Get returns the session's current result.
func (s *SessionStore) Get(sessionID string) (*llm.ExtractionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[sessionID]
	return r, ok
}

// Delete discards the session's result (explicit session teardown).
func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, sessionID)
}

// Len reports how many sessions currently hold a result.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// ensureSession reads the session cookie, minting one if absent.
func ensureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
