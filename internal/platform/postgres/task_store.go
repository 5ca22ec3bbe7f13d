package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend.
//
// AddCategories needs a transaction boundary, so unlike the other
// stores it requires a *sql.DB rather than a DBTX.
type TaskStore struct {
	db     *sql.DB
	logger *slog.Logger
	newID  func() (string, error)
}

// NewTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface.
func NewTaskStore(db *sql.DB, log *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
		newID:  domain.NewEntityID,
	}
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// SetIDGenerator replaces the entity id generator. Intended for test
// setup, where a fixed generator makes id collisions reproducible.
func (s *TaskStore) SetIDGenerator(gen func() (string, error)) {
	s.newID = gen
}

// FetchTasks implements store.TaskStore.FetchTasks.
func (s *TaskStore) FetchTasks(ctx context.Context, userID domain.UserID) ([]domain.TaskDescription, error) {
	query := `
		SELECT task_id, label, description, category_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.TaskDescription
	for rows.Next() {
		var t domain.TaskDescription
		if err := rows.Scan(&t.ID, &t.Label, &t.Description, &t.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// CreateTask implements store.TaskStore.CreateTask.
func (s *TaskStore) CreateTask(
	ctx context.Context,
	userID domain.UserID,
	label, description string,
	categoryID domain.CategoryID,
) (domain.TaskID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := s.newID()
	if err != nil {
		return "", err
	}
	taskID := domain.TaskID(id)

	query := `
		INSERT INTO tasks (user_id, task_id, category_id, label, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = s.db.ExecContext(ctx, query,
		int64(userID), string(taskID), string(categoryID), label, description)
	if err != nil {
		if err := mapError(err); store.IsDuplicateError(err) {
			return "", store.ErrIDConflict
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", int64(userID)))
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	return taskID, nil
}

// ModifyTask implements store.TaskStore.ModifyTask.
func (s *TaskStore) ModifyTask(
	ctx context.Context,
	userID domain.UserID,
	taskID domain.TaskID,
	label, description string,
	categoryID domain.CategoryID,
) error {
	query := `
		UPDATE tasks
		SET label = $1, description = $2, category_id = $3
		WHERE user_id = $4 AND task_id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		label, description, string(categoryID), int64(userID), string(taskID))
	if err != nil {
		return fmt.Errorf("failed to modify task: %w", err)
	}
	return checkRowsAffected(result, store.ErrTaskNotFound)
}

// DeleteTask implements store.TaskStore.DeleteTask.
func (s *TaskStore) DeleteTask(ctx context.Context, userID domain.UserID, taskID domain.TaskID) error {
	query := `DELETE FROM tasks WHERE user_id = $1 AND task_id = $2`

	result, err := s.db.ExecContext(ctx, query, int64(userID), string(taskID))
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return checkRowsAffected(result, store.ErrTaskNotFound)
}

// FetchCategories implements store.TaskStore.FetchCategories.
func (s *TaskStore) FetchCategories(ctx context.Context, userID domain.UserID) ([]domain.TaskCategoryDescription, error) {
	query := `
		SELECT category_id, label
		FROM task_categories
		WHERE user_id = $1
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []domain.TaskCategoryDescription
	for rows.Next() {
		var c domain.TaskCategoryDescription
		if err := rows.Scan(&c.ID, &c.Label); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// AddCategories implements store.TaskStore.AddCategories. All inserts
// run inside one transaction, so a failure leaves no partial rows.
func (s *TaskStore) AddCategories(
	ctx context.Context,
	userID domain.UserID,
	labels []string,
) ([]domain.TaskCategoryDescription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	created := make([]domain.TaskCategoryDescription, 0, len(labels))
	for _, label := range labels {
		id, err := s.newID()
		if err != nil {
			return nil, err
		}
		created = append(created, domain.TaskCategoryDescription{
			ID:    domain.CategoryID(id),
			Label: label,
		})
	}

	query := `
		INSERT INTO task_categories (user_id, category_id, label)
		VALUES ($1, $2, $3)
	`

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		for _, c := range created {
			if _, err := tx.ExecContext(ctx, query,
				int64(userID), string(c.ID), c.Label); err != nil {
				if err := mapError(err); store.IsDuplicateError(err) {
					return store.ErrIDConflict
				}
				return fmt.Errorf("failed to insert category: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to add categories",
			slog.String("error", err.Error()),
			slog.Int64("user_id", int64(userID)),
			slog.Int("count", len(labels)))
		return nil, err
	}

	return created, nil
}
