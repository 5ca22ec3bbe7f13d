package memory

import (
	"context"
	"sync"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// taskRecord and categoryRecord pair an owning user with the stored
// entity. Slices keep insertion order, which is the fetch order the
// callers observe.
type taskRecord struct {
	userID domain.UserID
	task   domain.TaskDescription
}

type categoryRecord struct {
	userID   domain.UserID
	category domain.TaskCategoryDescription
}

// TaskStore is an in-memory implementation of store.TaskStore.
// Tasks and categories share one mutex: a board read interleaved with
// a bulk category insert observes either all of the batch or none.
type TaskStore struct {
	mu         sync.Mutex
	tasks      []taskRecord
	categories []categoryRecord
	newID      func() (string, error)
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{newID: domain.NewEntityID}
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// SetIDGenerator replaces the entity id generator. Intended for test
// setup, where a fixed generator makes id collisions reproducible.
func (s *TaskStore) SetIDGenerator(gen func() (string, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.newID = gen
}

// FetchTasks implements store.TaskStore.FetchTasks.
func (s *TaskStore) FetchTasks(ctx context.Context, userID domain.UserID) ([]domain.TaskDescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []domain.TaskDescription
	for _, rec := range s.tasks {
		if rec.userID == userID {
			tasks = append(tasks, rec.task)
		}
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
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.newID()
	if err != nil {
		return "", err
	}
	taskID := domain.TaskID(id)

	if s.findTask(userID, taskID) != -1 {
		return "", store.ErrIDConflict
	}

	s.tasks = append(s.tasks, taskRecord{
		userID: userID,
		task: domain.TaskDescription{
			ID:          taskID,
			Label:       label,
			Description: description,
			CategoryID:  categoryID,
		},
	})

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
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTask(userID, taskID)
	if idx == -1 {
		return store.ErrTaskNotFound
	}

	s.tasks[idx].task.Label = label
	s.tasks[idx].task.Description = description
	s.tasks[idx].task.CategoryID = categoryID
	return nil
}

// DeleteTask implements store.TaskStore.DeleteTask.
func (s *TaskStore) DeleteTask(ctx context.Context, userID domain.UserID, taskID domain.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTask(userID, taskID)
	if idx == -1 {
		return store.ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return nil
}

// FetchCategories implements store.TaskStore.FetchCategories.
func (s *TaskStore) FetchCategories(ctx context.Context, userID domain.UserID) ([]domain.TaskCategoryDescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []domain.TaskCategoryDescription
	for _, rec := range s.categories {
		if rec.userID == userID {
			categories = append(categories, rec.category)
		}
	}
	return categories, nil
}

// AddCategories implements store.TaskStore.AddCategories. The whole
// batch is validated before the first append, so a collision leaves no
// partial rows behind.
func (s *TaskStore) AddCategories(
	ctx context.Context,
	userID domain.UserID,
	labels []string,
) ([]domain.TaskCategoryDescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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

	seen := make(map[domain.CategoryID]struct{}, len(created))
	for _, c := range created {
		if _, dup := seen[c.ID]; dup || s.findCategory(userID, c.ID) != -1 {
			return nil, store.ErrIDConflict
		}
		seen[c.ID] = struct{}{}
	}

	for _, c := range created {
		s.categories = append(s.categories, categoryRecord{userID: userID, category: c})
	}

	return created, nil
}

// findTask returns the index of the task matching (userID, taskID),
// or -1. Callers must hold the lock.
func (s *TaskStore) findTask(userID domain.UserID, taskID domain.TaskID) int {
	for i, rec := range s.tasks {
		if rec.userID == userID && rec.task.ID == taskID {
			return i
		}
	}
	return -1
}

// findCategory returns the index of the category matching
// (userID, categoryID), or -1. Callers must hold the lock.
func (s *TaskStore) findCategory(userID domain.UserID, categoryID domain.CategoryID) int {
	for i, rec := range s.categories {
		if rec.userID == userID && rec.category.ID == categoryID {
			return i
		}
	}
	return -1
}
