// Package tasks orchestrates task and category operations over the
// task store and assembles the board view.
package tasks

import (
	"context"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// defaultCategories are seeded for every newly registered user.
var defaultCategories = []string{"ToDo", "In progress", "Completed"}

// Service provides task and category operations for a single user.
type Service struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewService creates the tasks service.
func NewService(tasks store.TaskStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		tasks:  tasks,
		logger: log.With(slog.String("component", "tasks_service")),
	}
}

// FetchTasks returns all tasks owned by the user.
func (s *Service) FetchTasks(ctx context.Context, userID domain.UserID) ([]domain.TaskDescription, error) {
	return s.tasks.FetchTasks(ctx, userID)
}

// CreateTask stores a new task for the user and returns its id.
func (s *Service) CreateTask(
	ctx context.Context,
	userID domain.UserID,
	label, description string,
	categoryID domain.CategoryID,
) (domain.TaskID, error) {
	return s.tasks.CreateTask(ctx, userID, label, description, categoryID)
}

// ModifyTask updates the task matching (userID, taskID).
// Returns store.ErrTaskNotFound if no task matches.
func (s *Service) ModifyTask(
	ctx context.Context,
	userID domain.UserID,
	taskID domain.TaskID,
	label, description string,
	categoryID domain.CategoryID,
) error {
	return s.tasks.ModifyTask(ctx, userID, taskID, label, description, categoryID)
}

// DeleteTask removes the task matching (userID, taskID).
// Returns store.ErrTaskNotFound if no task matches.
func (s *Service) DeleteTask(ctx context.Context, userID domain.UserID, taskID domain.TaskID) error {
	return s.tasks.DeleteTask(ctx, userID, taskID)
}

// FetchCategories returns all categories owned by the user.
func (s *Service) FetchCategories(ctx context.Context, userID domain.UserID) ([]domain.TaskCategoryDescription, error) {
	return s.tasks.FetchCategories(ctx, userID)
}

// SeedDefaultCategories provisions the default category set for a
// newly registered user. Implements auth.CategorySeeder.
func (s *Service) SeedDefaultCategories(ctx context.Context, userID domain.UserID) error {
	_, err := s.tasks.AddCategories(ctx, userID, defaultCategories)
	if err != nil {
		return err
	}
	s.logger.Info("seeded default categories", slog.Int64("user_id", int64(userID)))
	return nil
}

// Board fetches the user's categories and tasks and assembles the
// board view.
func (s *Service) Board(ctx context.Context, userID domain.UserID) (*Board, error) {
	taskList, err := s.tasks.FetchTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.tasks.FetchCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return MakeBoard(taskList, categories)
}
