package tasks

import (
	"fmt"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// Board is the denormalized view joining a user's categories and
// tasks for display. It is assembled on demand and never persisted.
type Board struct {
	OrderedCategories []*BoardCategory `json:"ordered_categories"`
}

// BoardCategory is one column of the board: a category and the tasks
// assigned to it, in task-fetch order.
type BoardCategory struct {
	CategoryID   domain.CategoryID `json:"category_id"`
	Label        string            `json:"label"`
	OrderedTasks []BoardTask       `json:"ordered_tasks"`
}

// BoardTask is a task as displayed on the board. The category is
// implied by the enclosing BoardCategory.
type BoardTask struct {
	TaskID      domain.TaskID `json:"task_id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
}

// MakeBoard groups tasks under their categories. Categories appear in
// fetch order, tasks within a category in task-fetch order.
//
// A task referencing a category absent from the category list means
// the two fetches observed inconsistent state (e.g. a concurrent
// deletion); that is reported as an error rather than silently
// dropping the task.
func MakeBoard(
	tasks []domain.TaskDescription,
	categories []domain.TaskCategoryDescription,
) (*Board, error) {
	ordered := make([]*BoardCategory, 0, len(categories))
	index := make(map[domain.CategoryID]int, len(categories))
	for i, c := range categories {
		ordered = append(ordered, &BoardCategory{
			CategoryID:   c.ID,
			Label:        c.Label,
			OrderedTasks: []BoardTask{},
		})
		index[c.ID] = i
	}

	for _, t := range tasks {
		i, ok := index[t.CategoryID]
		if !ok {
			return nil, fmt.Errorf(
				"task %s is assigned to category %s, but the category is missing",
				t.ID, t.CategoryID)
		}
		ordered[i].OrderedTasks = append(ordered[i].OrderedTasks, BoardTask{
			TaskID:      t.ID,
			Label:       t.Label,
			Description: t.Description,
		})
	}

	return &Board{OrderedCategories: ordered}, nil
}
