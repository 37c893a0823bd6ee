package store

import (
	"sync"

	"github.com/MKhiriev/go-unlock-core/models"
)

// sessionStore is the private in-memory implementation of [SessionStore].
// Decrypted user keys must never touch disk, so this is a mutex-guarded map
// and nothing more. Writes are single atomic assignments per user: two
// concurrent unlocks for the same user resolve last-writer-wins, which is
// acceptable because both writers only ever install server-accepted data.
type sessionStore struct {
	mu   sync.RWMutex
	keys map[models.UserID]models.UserKey
}

// NewSessionStore constructs an empty [SessionStore].
func NewSessionStore() SessionStore {
	return &sessionStore{keys: make(map[models.UserID]models.UserKey)}
}

// SetUserKey implements [SessionStore]. The key is copied so later mutation
// of the caller's slice cannot corrupt the session.
func (s *sessionStore) SetUserKey(userID models.UserID, key models.UserKey) {
	owned := make(models.UserKey, len(key))
	copy(owned, key)

	s.mu.Lock()
	s.keys[userID] = owned
	s.mu.Unlock()
}

// UserKey implements [SessionStore].
func (s *sessionStore) UserKey(userID models.UserID) (models.UserKey, bool) {
	s.mu.RLock()
	key, ok := s.keys[userID]
	s.mu.RUnlock()
	return key, ok
}

// Clear implements [SessionStore].
func (s *sessionStore) Clear(userID models.UserID) {
	s.mu.Lock()
	delete(s.keys, userID)
	s.mu.Unlock()
}
