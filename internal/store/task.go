package store

import (
	"context"

	"github.com/PanDora7855/task-manager-backend/internal/domain"
)

// TaskFilter narrows the result of List. Zero values match everything.
type TaskFilter struct {
	// TitleContains matches tasks whose title contains the given
	// substring, case-insensitively.
	TitleContains string

	// DatePrefix matches tasks whose RFC 3339 creation timestamp starts
	// with the given string, e.g. "2026-08" for a whole month.
	DatePrefix string
}

// TaskStore defines the interface for task data storage.
type TaskStore interface {
	// List returns the tasks matching the filter, in insertion order.
	// An empty filter returns the whole collection.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Create appends a task to the collection.
	// Returns ErrInvalidEntity if the task fails domain validation and
	// ErrDuplicate if a task with the same ID already exists.
	Create(ctx context.Context, task *domain.Task) error

	// Update merges the supplied fields into the stored task and returns
	// the merged result. Returns ErrTaskNotFound if the task does not
	// exist and ErrInvalidEntity if the merge fails validation.
	Update(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error)

	// Delete removes a task from the collection.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
