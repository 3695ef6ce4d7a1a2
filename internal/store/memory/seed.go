package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/PanDora7855/task-manager-backend/internal/domain"
)

// seedTasks builds the sample records a fresh store starts with.
// IDs are generated per process start; timestamps are staggered so the
// date filter has something to distinguish.
func seedTasks() []*domain.Task {
	now := time.Now().UTC()

	seeds := []struct {
		title       string
		description string
		category    domain.Category
		status      domain.Status
		priority    domain.Priority
		age         time.Duration
	}{
		{
			title:       "Fix login redirect loop",
			description: "Users with expired sessions bounce between /login and /home.",
			category:    domain.CategoryBug,
			status:      domain.StatusInProgress,
			priority:    domain.PriorityHigh,
			age:         96 * time.Hour,
		},
		{
			title:       "Add CSV export for reports",
			description: "Finance wants monthly reports downloadable as CSV.",
			category:    domain.CategoryFeature,
			status:      domain.StatusToDo,
			priority:    domain.PriorityMedium,
			age:         72 * time.Hour,
		},
		{
			title:       "Document the webhook payloads",
			description: "",
			category:    domain.CategoryDocumentation,
			status:      domain.StatusToDo,
			priority:    domain.PriorityLow,
			age:         48 * time.Hour,
		},
		{
			title:       "Refactor notification dispatcher",
			description: "Split the dispatcher into per-channel senders.",
			category:    domain.CategoryRefactor,
			status:      domain.StatusToDo,
			priority:    domain.PriorityMedium,
			age:         24 * time.Hour,
		},
		{
			title:       "Cover billing edge cases with tests",
			description: "Proration and mid-cycle plan changes are untested.",
			category:    domain.CategoryTest,
			status:      domain.StatusDone,
			priority:    domain.PriorityHigh,
			age:         12 * time.Hour,
		},
	}

	tasks := make([]*domain.Task, 0, len(seeds))
	for _, s := range seeds {
		tasks = append(tasks, &domain.Task{
			ID:          uuid.NewString(),
			Title:       s.title,
			Description: s.description,
			Category:    s.category,
			Status:      s.status,
			Priority:    s.priority,
			CreatedAt:   now.Add(-s.age),
		})
	}
	return tasks
}
