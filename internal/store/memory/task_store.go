// Package memory provides an in-memory TaskStore implementation.
// The collection lives for the process lifetime and is never persisted.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PanDora7855/task-manager-backend/internal/domain"
	"github.com/PanDora7855/task-manager-backend/internal/store"
)

// TaskStore holds the task collection as an insertion-ordered slice.
// A RWMutex keeps each operation atomic under concurrent requests.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []*domain.Task
}

// Compile-time check that TaskStore implements store.TaskStore.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// NewSeededTaskStore creates a task store pre-populated with a small
// fixed set of sample tasks, as served on a fresh startup.
func NewSeededTaskStore() *TaskStore {
	s := NewTaskStore()
	for _, t := range seedTasks() {
		s.tasks = append(s.tasks, t)
	}
	return s
}

// List returns the tasks matching the filter, in insertion order.
func (s *TaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	title := strings.ToLower(filter.TitleContains)

	result := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if title != "" && !strings.Contains(strings.ToLower(t.Title), title) {
			continue
		}
		if filter.DatePrefix != "" &&
			!strings.HasPrefix(t.CreatedAt.Format(time.RFC3339), filter.DatePrefix) {
			continue
		}
		result = append(result, copyTask(t))
	}
	return result, nil
}

// GetByID retrieves a task by its unique ID.
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return copyTask(t), nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// Create appends a task to the collection.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == task.ID {
			return fmt.Errorf("%w: task %s", store.ErrDuplicate, task.ID)
		}
	}
	s.tasks = append(s.tasks, copyTask(task))
	return nil
}

// Update merges the supplied fields into the stored task and returns
// the merged result. Unsupplied fields are left untouched.
func (s *TaskStore) Update(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if err := t.Apply(update); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		return copyTask(t), nil
	}
	return nil, store.ErrTaskNotFound
}

// Delete removes a task from the collection, preserving the order of
// the remaining tasks.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// copyTask returns a shallow copy so callers cannot mutate stored state.
func copyTask(t *domain.Task) *domain.Task {
	c := *t
	return &c
}
