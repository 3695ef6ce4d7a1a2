package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTitleEmpty is returned when a task title is empty or only whitespace.
	ErrTitleEmpty = errors.New("task title cannot be empty")

	// ErrCategoryEmpty is returned when a task category is missing.
	ErrCategoryEmpty = errors.New("task category cannot be empty")

	// ErrStatusEmpty is returned when a task status is missing.
	ErrStatusEmpty = errors.New("task status cannot be empty")

	// ErrPriorityEmpty is returned when a task priority is missing.
	ErrPriorityEmpty = errors.New("task priority cannot be empty")
)

// Category classifies the kind of work a task represents.
type Category string

// Known task categories. Membership is not enforced on input; the
// constants exist for callers and seed data.
const (
	CategoryBug           Category = "Bug"
	CategoryFeature       Category = "Feature"
	CategoryDocumentation Category = "Documentation"
	CategoryRefactor      Category = "Refactor"
	CategoryTest          Category = "Test"
)

// Status tracks a task's progress.
type Status string

// Known task statuses.
const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// Priority ranks a task's urgency.
type Priority string

// Known task priorities.
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Task represents a single unit of work tracked by the service.
// ID and CreatedAt are assigned at creation time and never change.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask creates a new Task with the given fields.
// It generates a fresh ID, stamps the creation time in UTC, and
// validates the result. Returns an error if validation fails.
func NewTask(title, description string, category Category, status Status, priority Priority) (*Task, error) {
	task := &Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Category:    category,
		Status:      status,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrTaskIDEmpty
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleEmpty
	}

	if t.Category == "" {
		return ErrCategoryEmpty
	}

	if t.Status == "" {
		return ErrStatusEmpty
	}

	if t.Priority == "" {
		return ErrPriorityEmpty
	}

	return nil
}

// TaskUpdate describes a partial modification to a Task.
// A nil field leaves the corresponding Task field untouched; a non-nil
// field replaces it. ID and CreatedAt cannot be updated.
type TaskUpdate struct {
	Title       *string
	Description *string
	Category    *Category
	Status      *Status
	Priority    *Priority
}

// Apply merges the update into the task, supplied fields overriding
// existing values. A supplied title must be non-empty after trimming;
// otherwise the task is left unmodified and ErrTitleEmpty is returned.
func (t *Task) Apply(update TaskUpdate) error {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return ErrTitleEmpty
	}

	if update.Title != nil {
		t.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Category != nil {
		t.Category = *update.Category
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}

	return nil
}
