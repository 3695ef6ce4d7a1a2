package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		category    Category
		status      Status
		priority    Priority
		wantErr     error
	}{
		{
			name:        "valid task",
			title:       "Fix login crash",
			description: "Crash on empty password",
			category:    CategoryBug,
			status:      StatusToDo,
			priority:    PriorityHigh,
			wantErr:     nil,
		},
		{
			name:     "valid task without description",
			title:    "Write API docs",
			category: CategoryDocumentation,
			status:   StatusToDo,
			priority: PriorityLow,
			wantErr:  nil,
		},
		{
			name:     "empty title",
			title:    "",
			category: CategoryBug,
			status:   StatusToDo,
			priority: PriorityLow,
			wantErr:  ErrTitleEmpty,
		},
		{
			name:     "whitespace-only title",
			title:    "   \t ",
			category: CategoryBug,
			status:   StatusToDo,
			priority: PriorityLow,
			wantErr:  ErrTitleEmpty,
		},
		{
			name:     "missing category",
			title:    "Fix login crash",
			status:   StatusToDo,
			priority: PriorityLow,
			wantErr:  ErrCategoryEmpty,
		},
		{
			name:     "missing status",
			title:    "Fix login crash",
			category: CategoryBug,
			priority: PriorityLow,
			wantErr:  ErrStatusEmpty,
		},
		{
			name:     "missing priority",
			title:    "Fix login crash",
			category: CategoryBug,
			status:   StatusToDo,
			wantErr:  ErrPriorityEmpty,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := time.Now().UTC()
			task, err := NewTask(tc.title, tc.description, tc.category, tc.status, tc.priority)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.NotEmpty(t, task.ID)
			assert.Equal(t, tc.description, task.Description)
			assert.False(t, task.CreatedAt.Before(before))
			assert.Equal(t, time.UTC, task.CreatedAt.Location())
		})
	}
}

func TestNewTaskTrimsTitle(t *testing.T) {
	task, err := NewTask("  Fix login crash  ", "", CategoryBug, StatusToDo, PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "Fix login crash", task.Title)
}

func TestNewTaskGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task, err := NewTask("Fix login crash", "", CategoryBug, StatusToDo, PriorityHigh)
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate ID generated: %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskApply(t *testing.T) {
	base := func() *Task {
		return &Task{
			ID:          "task-1",
			Title:       "Original title",
			Description: "Original description",
			Category:    CategoryFeature,
			Status:      StatusToDo,
			Priority:    PriorityMedium,
			CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	strPtr := func(s string) *string { return &s }
	statusPtr := func(s Status) *Status { return &s }
	priorityPtr := func(p Priority) *Priority { return &p }
	categoryPtr := func(c Category) *Category { return &c }

	t.Run("status only preserves other fields", func(t *testing.T) {
		task := base()
		err := task.Apply(TaskUpdate{Status: statusPtr(StatusDone)})
		require.NoError(t, err)

		assert.Equal(t, StatusDone, task.Status)
		assert.Equal(t, "Original title", task.Title)
		assert.Equal(t, "Original description", task.Description)
		assert.Equal(t, CategoryFeature, task.Category)
		assert.Equal(t, PriorityMedium, task.Priority)
	})

	t.Run("all fields replaced", func(t *testing.T) {
		task := base()
		err := task.Apply(TaskUpdate{
			Title:       strPtr("New title"),
			Description: strPtr("New description"),
			Category:    categoryPtr(CategoryRefactor),
			Status:      statusPtr(StatusInProgress),
			Priority:    priorityPtr(PriorityHigh),
		})
		require.NoError(t, err)

		assert.Equal(t, "New title", task.Title)
		assert.Equal(t, "New description", task.Description)
		assert.Equal(t, CategoryRefactor, task.Category)
		assert.Equal(t, StatusInProgress, task.Status)
		assert.Equal(t, PriorityHigh, task.Priority)
	})

	t.Run("blank title rejected and task unmodified", func(t *testing.T) {
		task := base()
		err := task.Apply(TaskUpdate{
			Title:  strPtr("   "),
			Status: statusPtr(StatusDone),
		})
		assert.ErrorIs(t, err, ErrTitleEmpty)
		assert.Equal(t, "Original title", task.Title)
		assert.Equal(t, StatusToDo, task.Status)
	})

	t.Run("description can be cleared", func(t *testing.T) {
		task := base()
		err := task.Apply(TaskUpdate{Description: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, task.Description)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		task := base()
		err := task.Apply(TaskUpdate{})
		require.NoError(t, err)
		assert.Equal(t, base(), task)
	})
}
