// Package auth implements credential validation and the session
// lifecycle on top of the user and session stores.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// CategorySeeder provisions the default categories for a newly
// registered user. The tasks service implements it; auth receives it
// explicitly at construction instead of capturing the task store in a
// hidden callback.
type CategorySeeder interface {
	SeedDefaultCategories(ctx context.Context, userID domain.UserID) error
}

// Service implements login, registration, and session resolution.
type Service struct {
	users    store.UserStore
	sessions store.SessionStore
	seeder   CategorySeeder
	scheme   PasswordScheme
	logger   *slog.Logger
}

// NewService creates the auth service. All dependencies are required;
// scheme defaults to PlaintextScheme when nil and log to the default
// logger.
func NewService(
	users store.UserStore,
	sessions store.SessionStore,
	seeder CategorySeeder,
	scheme PasswordScheme,
	log *slog.Logger,
) *Service {
	if scheme == nil {
		scheme = NewPlaintextScheme()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		users:    users,
		sessions: sessions,
		seeder:   seeder,
		scheme:   scheme,
		logger:   log.With(slog.String("component", "auth_service")),
	}
}

// Login validates the credentials and issues a new session token.
// Earlier sessions for the same user stay valid; logins are
// independent and additive.
// Returns ErrUserNotFound or ErrIncorrectPassword as domain outcomes.
func (s *Service) Login(ctx context.Context, username, password string) (domain.UserID, domain.SessionToken, error) {
	userID, stored, err := s.users.FindWithPassword(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return 0, domain.SessionToken{}, ErrUserNotFound
		}
		return 0, domain.SessionToken{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.scheme.Compare(stored, password); err != nil {
		return 0, domain.SessionToken{}, ErrIncorrectPassword
	}

	token, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return 0, domain.SessionToken{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user logged in", slog.Int64("user_id", int64(userID)))
	return userID, token, nil
}

// Register creates a new user and logs them in. The check order is
// fixed: username format, password format, existing username,
// creation. After creation the user gets a session and the default
// categories; a seeding failure is returned to the caller instead of
// aborting the process.
func (s *Service) Register(ctx context.Context, username, password string) (domain.UserID, domain.SessionToken, error) {
	if !domain.ValidateUsername(username) {
		return 0, domain.SessionToken{}, ErrInvalidUsername
	}
	if !domain.ValidatePassword(password) {
		return 0, domain.SessionToken{}, ErrInvalidPassword
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return 0, domain.SessionToken{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return 0, domain.SessionToken{}, ErrUserAlreadyExists
	}

	stored, err := s.scheme.Hash(password)
	if err != nil {
		return 0, domain.SessionToken{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.users.Create(ctx, username, stored)
	if err != nil {
		// The store resolves the create/create race; the earlier
		// existence check only fixes the error ordering.
		if errors.Is(err, store.ErrUsernameExists) {
			return 0, domain.SessionToken{}, ErrUserAlreadyExists
		}
		return 0, domain.SessionToken{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return 0, domain.SessionToken{}, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.seeder.SeedDefaultCategories(ctx, userID); err != nil {
		s.logger.Error("failed to seed default categories",
			slog.Int64("user_id", int64(userID)),
			slog.String("error", err.Error()))
		return 0, domain.SessionToken{}, fmt.Errorf("failed to seed default categories: %w", err)
	}

	s.logger.Info("user registered", slog.Int64("user_id", int64(userID)))
	return userID, token, nil
}

// AuthorizedUserID resolves a session token to the user it
// authenticates. Returns store.ErrSessionNotFound for unknown tokens;
// callers treat that as "unauthenticated" rather than as a failure.
func (s *Service) AuthorizedUserID(ctx context.Context, token domain.SessionToken) (domain.UserID, error) {
	return s.sessions.AuthorizedUserID(ctx, token)
}

// GetUsername returns the username of the given user.
// Returns store.ErrUserNotFound if no such user exists.
func (s *Service) GetUsername(ctx context.Context, userID domain.UserID) (string, error) {
	return s.users.GetUsername(ctx, userID)
}
