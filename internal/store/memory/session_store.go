package memory

import (
	"context"
	"sync"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// SessionStore is an in-memory implementation of store.SessionStore.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.UserID
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.UserID),
	}
}

// Ensure SessionStore implements store.SessionStore
var _ store.SessionStore = (*SessionStore)(nil)

// AuthorizedUserID implements store.SessionStore.AuthorizedUserID.
func (s *SessionStore) AuthorizedUserID(ctx context.Context, token domain.SessionToken) (domain.UserID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.sessions[token.String()]
	if !ok {
		return 0, store.ErrSessionNotFound
	}
	return userID, nil
}

// Create implements store.SessionStore.Create. A token collision is
// reported as ErrIDConflict instead of overwriting the existing
// session.
func (s *SessionStore) Create(ctx context.Context, userID domain.UserID) (domain.SessionToken, error) {
	token, err := domain.NewSessionToken()
	if err != nil {
		return domain.SessionToken{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[token.String()]; exists {
		return domain.SessionToken{}, store.ErrIDConflict
	}
	s.sessions[token.String()] = userID

	return token, nil
}
