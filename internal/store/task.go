package store

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task and category persistence.
// All operations are scoped to a single owning user; an id only
// matches together with the user id it belongs to.
type TaskStore interface {
	// FetchTasks returns all tasks owned by the user, in fetch order.
	FetchTasks(ctx context.Context, userID domain.UserID) ([]domain.TaskDescription, error)

	// CreateTask stores a new task with a freshly generated id.
	// The category id is not validated against existing categories;
	// board assembly detects dangling references.
	CreateTask(
		ctx context.Context,
		userID domain.UserID,
		label, description string,
		categoryID domain.CategoryID,
	) (domain.TaskID, error)

	// ModifyTask replaces the label, description, and category of the
	// task matching (userID, taskID).
	// Returns ErrTaskNotFound if no task matches.
	ModifyTask(
		ctx context.Context,
		userID domain.UserID,
		taskID domain.TaskID,
		label, description string,
		categoryID domain.CategoryID,
	) error

	// DeleteTask removes the task matching (userID, taskID).
	// Returns ErrTaskNotFound if no task matches.
	DeleteTask(ctx context.Context, userID domain.UserID, taskID domain.TaskID) error

	// FetchCategories returns all categories owned by the user, in
	// fetch order.
	FetchCategories(ctx context.Context, userID domain.UserID) ([]domain.TaskCategoryDescription, error)

	// AddCategories creates one category per label with freshly
	// generated ids, atomically: either every label is persisted or
	// none are. Returns the created categories in label order.
	AddCategories(
		ctx context.Context,
		userID domain.UserID,
		labels []string,
	) ([]domain.TaskCategoryDescription, error)
}
