package memory

import (
	"context"
	"sync"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// userRecord holds the stored fields of a single user.
type userRecord struct {
	username string
	password string
}

// UserStore is an in-memory implementation of store.UserStore.
type UserStore struct {
	mu         sync.Mutex
	nextID     domain.UserID
	byID       map[domain.UserID]userRecord
	byUsername map[string]domain.UserID
}

// NewUserStore creates an empty in-memory user store. The first
// assigned user id is 1.
func NewUserStore() *UserStore {
	return &UserStore{
		nextID:     1,
		byID:       make(map[domain.UserID]userRecord),
		byUsername: make(map[string]domain.UserID),
	}
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// Seed inserts a user with a fixed id, bypassing id assignment.
// Intended for test setup. The next assigned id is bumped past the
// seeded one so later Create calls cannot collide with it.
func (s *UserStore) Seed(id domain.UserID, username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.byID[id] = userRecord{username: username, password: password}
	s.byUsername[username] = id
}

// ExistsByUsername implements store.UserStore.ExistsByUsername.
func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byUsername[username]
	return ok, nil
}

// GetUsername implements store.UserStore.GetUsername.
func (s *UserStore) GetUsername(ctx context.Context, id domain.UserID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return "", store.ErrUserNotFound
	}
	return rec.username, nil
}

// Create implements store.UserStore.Create. The uniqueness check and
// the insert happen under the same lock acquisition, so concurrent
// creates with the same username commit at most once.
func (s *UserStore) Create(ctx context.Context, username, password string) (domain.UserID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[username]; ok {
		return 0, store.ErrUsernameExists
	}

	id := s.nextID
	s.nextID++

	s.byID[id] = userRecord{username: username, password: password}
	s.byUsername[username] = id

	return id, nil
}

// FindWithPassword implements store.UserStore.FindWithPassword.
func (s *UserStore) FindWithPassword(ctx context.Context, username string) (domain.UserID, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[username]
	if !ok {
		return 0, "", store.ErrUserNotFound
	}

	// The id is guaranteed to exist: both maps are updated together.
	rec := s.byID[id]
	return id, rec.password, nil
}
