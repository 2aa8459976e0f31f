package repository

import (
	"errors"
	"sync"
	"time"

	"vidloop-backend/internal/models"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionData is everything generated for one client session. All of it is
// ephemeral: regenerated on every session create, dropped on delete.
type SessionData struct {
	ID        string
	CreatedAt time.Time

	// FeedVideos and ShortsVideos are independent generation batches,
	// mirroring the client screens that each generate their own.
	FeedVideos   []*models.Video
	ShortsVideos []*models.Video

	Stories       []*models.Story
	Chats         []*models.Chat
	Notifications []*models.Notification

	// Liked holds the session user's optimistic like toggles, kept beside
	// the immutable generated like counts.
	Liked map[string]bool
}

// SessionStore keeps session data in memory. A single store-level mutex
// serializes all access; each session belongs to exactly one client, so
// contention is between that client's own requests.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*SessionData
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*SessionData)}
}

// Create registers a new session.
func (s *SessionStore) Create(data *SessionData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[data.ID] = data
}

// View runs fn with read access to the session data.
func (s *SessionStore) View(id string, fn func(*SessionData) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(data)
}

// Update runs fn with exclusive access to the session data.
func (s *SessionStore) Update(id string, fn func(*SessionData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(data)
}

// Exists reports whether the session id is known.
func (s *SessionStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok
}

// Delete drops a session and all its generated data.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
