package tasks_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/service/tasks"
	"github.com/taskboard/taskboard-api/internal/store"
	"github.com/taskboard/taskboard-api/internal/store/memory"
)

const owner domain.UserID = 1

func newService(t *testing.T) (*tasks.Service, *memory.TaskStore) {
	t.Helper()
	taskStore := memory.NewTaskStore()
	return tasks.NewService(taskStore, slog.Default()), taskStore
}

func TestSeedDefaultCategories(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaultCategories(ctx, owner))

	categories, err := svc.FetchCategories(ctx, owner)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "ToDo", categories[0].Label)
	assert.Equal(t, "In progress", categories[1].Label)
	assert.Equal(t, "Completed", categories[2].Label)
}

func TestBoardRoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaultCategories(ctx, owner))
	categories, err := svc.FetchCategories(ctx, owner)
	require.NoError(t, err)

	taskID, err := svc.CreateTask(ctx, owner, "write spec", "and tests", categories[0].ID)
	require.NoError(t, err)

	board, err := svc.Board(ctx, owner)
	require.NoError(t, err)
	require.Len(t, board.OrderedCategories, 3)
	require.Len(t, board.OrderedCategories[0].OrderedTasks, 1)
	assert.Equal(t, taskID, board.OrderedCategories[0].OrderedTasks[0].TaskID)
}

func TestBoardDetectsDanglingCategory(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// The store does not validate category references, so a task can
	// point at a category that was never created. Board assembly is
	// where the inconsistency surfaces.
	_, err := svc.CreateTask(ctx, owner, "orphan", "", "00000000000000000000000000000000")
	require.NoError(t, err)

	_, err = svc.Board(ctx, owner)
	assert.Error(t, err)
}

func TestModifyAndDeletePassThrough(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.CreateTask(ctx, owner, "task", "", "c1")
	require.NoError(t, err)

	require.NoError(t, svc.ModifyTask(ctx, owner, id, "renamed", "d", "c1"))

	err = svc.ModifyTask(ctx, owner, "00000000000000000000000000000000", "x", "", "c1")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	require.NoError(t, svc.DeleteTask(ctx, owner, id))
	err = svc.DeleteTask(ctx, owner, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
