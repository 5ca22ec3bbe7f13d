package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
	"github.com/taskboard/taskboard-api/internal/store/memory"
)

const (
	owner domain.UserID = 1
	other domain.UserID = 2
)

func TestTaskStoreCreateAndFetch(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	id, err := s.CreateTask(ctx, owner, "write report", "quarterly numbers", "c1")
	require.NoError(t, err)
	assert.Len(t, string(id), 32)

	tasks, err := s.FetchTasks(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskDescription{
		ID:          id,
		Label:       "write report",
		Description: "quarterly numbers",
		CategoryID:  "c1",
	}, tasks[0])

	// Another user sees nothing.
	tasks, err = s.FetchTasks(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStoreFetchOrder(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	first, err := s.CreateTask(ctx, owner, "first", "", "c1")
	require.NoError(t, err)
	second, err := s.CreateTask(ctx, owner, "second", "", "c1")
	require.NoError(t, err)

	tasks, err := s.FetchTasks(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first, tasks[0].ID)
	assert.Equal(t, second, tasks[1].ID)
}

func TestTaskStoreModify(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	id, err := s.CreateTask(ctx, owner, "old", "old desc", "c1")
	require.NoError(t, err)

	err = s.ModifyTask(ctx, owner, id, "new", "new desc", "c2")
	require.NoError(t, err)

	tasks, err := s.FetchTasks(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "new", tasks[0].Label)
	assert.Equal(t, "new desc", tasks[0].Description)
	assert.Equal(t, domain.CategoryID("c2"), tasks[0].CategoryID)
}

func TestTaskStoreModifyNotFound(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	id, err := s.CreateTask(ctx, owner, "task", "", "c1")
	require.NoError(t, err)

	err = s.ModifyTask(ctx, owner, "00000000000000000000000000000000", "x", "", "c1")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	// A task id only matches together with its owner.
	err = s.ModifyTask(ctx, other, id, "x", "", "c1")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	keep, err := s.CreateTask(ctx, owner, "keep", "", "c1")
	require.NoError(t, err)
	drop, err := s.CreateTask(ctx, owner, "drop", "", "c1")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(ctx, owner, drop))

	tasks, err := s.FetchTasks(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep, tasks[0].ID)
}

func TestTaskStoreDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	err := s.DeleteTask(ctx, owner, "00000000000000000000000000000000")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	id, err := s.CreateTask(ctx, owner, "task", "", "c1")
	require.NoError(t, err)

	err = s.DeleteTask(ctx, other, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	// Deleting twice errors the second time.
	require.NoError(t, s.DeleteTask(ctx, owner, id))
	err = s.DeleteTask(ctx, owner, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStoreAddCategories(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	labels := []string{"ToDo", "In progress", "Completed"}
	created, err := s.AddCategories(ctx, owner, labels)
	require.NoError(t, err)
	require.Len(t, created, 3)

	for i, c := range created {
		assert.Equal(t, labels[i], c.Label)
		assert.Len(t, string(c.ID), 32)
	}

	fetched, err := s.FetchCategories(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	// Scoped to the owning user.
	fetched, err = s.FetchCategories(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, fetched)
}

func TestTaskStoreAddCategoriesEmptyBatch(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	created, err := s.AddCategories(ctx, owner, nil)
	require.NoError(t, err)
	assert.Empty(t, created)
}

// sequenceIDs returns a generator yielding the given ids in order,
// cycling when exhausted.
func sequenceIDs(ids ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		id := ids[i%len(ids)]
		i++
		return id, nil
	}
}

func TestTaskStoreAddCategoriesCollisionLeavesNoPartialRows(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	existing, err := s.AddCategories(ctx, owner, []string{"ToDo"})
	require.NoError(t, err)
	require.Len(t, existing, 1)

	// The second generated id collides with the already stored
	// category, so the first label of the batch must not survive.
	s.SetIDGenerator(sequenceIDs(
		"11111111111111111111111111111111",
		string(existing[0].ID),
	))

	_, err = s.AddCategories(ctx, owner, []string{"A", "B"})
	assert.ErrorIs(t, err, store.ErrIDConflict)

	fetched, err := s.FetchCategories(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, existing, fetched)
}

func TestTaskStoreAddCategoriesRejectsDuplicateIDsWithinBatch(t *testing.T) {
	ctx := context.Background()
	s := memory.NewTaskStore()

	s.SetIDGenerator(sequenceIDs("22222222222222222222222222222222"))

	_, err := s.AddCategories(ctx, owner, []string{"A", "B"})
	assert.ErrorIs(t, err, store.ErrIDConflict)

	fetched, err := s.FetchCategories(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, fetched)
}
