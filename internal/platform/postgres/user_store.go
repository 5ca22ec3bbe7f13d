package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// UserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the
// UserStore interface. The connection (or transaction) is managed by
// the caller. If log is nil, the default logger is used.
func NewUserStore(db store.DBTX, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// ExistsByUsername implements store.UserStore.ExistsByUsername.
func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username = $1`

	var one int
	err := s.db.QueryRowContext(ctx, query, username).Scan(&one)
	if err != nil {
		if err := mapError(err); store.IsNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return true, nil
}

// GetUsername implements store.UserStore.GetUsername.
func (s *UserStore) GetUsername(ctx context.Context, id domain.UserID) (string, error) {
	query := `SELECT username FROM users WHERE user_id = $1`

	var username string
	err := s.db.QueryRowContext(ctx, query, int64(id)).Scan(&username)
	if err != nil {
		if err := mapError(err); store.IsNotFoundError(err) {
			return "", store.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get username: %w", err)
	}
	return username, nil
}

// Create implements store.UserStore.Create. The unique index on
// username resolves concurrent creates: losers get ErrUsernameExists.
func (s *UserStore) Create(ctx context.Context, username, password string) (domain.UserID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING user_id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, username, password).Scan(&id)
	if err != nil {
		if err := mapError(err); store.IsDuplicateError(err) {
			return 0, store.ErrUsernameExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created", slog.Int64("user_id", id))
	return domain.UserID(id), nil
}

// FindWithPassword implements store.UserStore.FindWithPassword.
func (s *UserStore) FindWithPassword(ctx context.Context, username string) (domain.UserID, string, error) {
	query := `SELECT user_id, password FROM users WHERE username = $1`

	var (
		id       int64
		password string
	)
	err := s.db.QueryRowContext(ctx, query, username).Scan(&id, &password)
	if err != nil {
		if err := mapError(err); store.IsNotFoundError(err) {
			return 0, "", store.ErrUserNotFound
		}
		return 0, "", fmt.Errorf("failed to find user: %w", err)
	}
	return domain.UserID(id), password, nil
}
