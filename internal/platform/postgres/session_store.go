package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// SessionStore implements the store.SessionStore interface using a
// PostgreSQL database as the storage backend.
type SessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface.
func NewSessionStore(db store.DBTX, log *slog.Logger) *SessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &SessionStore{
		db:     db,
		logger: log.With(slog.String("component", "session_store")),
	}
}

// Ensure SessionStore implements store.SessionStore
var _ store.SessionStore = (*SessionStore)(nil)

// AuthorizedUserID implements store.SessionStore.AuthorizedUserID.
func (s *SessionStore) AuthorizedUserID(ctx context.Context, token domain.SessionToken) (domain.UserID, error) {
	query := `SELECT user_id FROM sessions WHERE token = $1`

	var id int64
	err := s.db.QueryRowContext(ctx, query, token.String()).Scan(&id)
	if err != nil {
		if err := mapError(err); store.IsNotFoundError(err) {
			return 0, store.ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to look up session: %w", err)
	}
	return domain.UserID(id), nil
}

// Create implements store.SessionStore.Create. The primary key on
// token turns the (practically unreachable) collision into
// ErrIDConflict instead of overwriting an existing session.
func (s *SessionStore) Create(ctx context.Context, userID domain.UserID) (domain.SessionToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	token, err := domain.NewSessionToken()
	if err != nil {
		return domain.SessionToken{}, err
	}

	query := `INSERT INTO sessions (token, user_id) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, token.String(), int64(userID)); err != nil {
		if err := mapError(err); store.IsDuplicateError(err) {
			return domain.SessionToken{}, store.ErrIDConflict
		}
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.Int64("user_id", int64(userID)))
		return domain.SessionToken{}, fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}
