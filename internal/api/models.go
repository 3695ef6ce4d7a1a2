package api

import (
	"strings"
	"time"

	"github.com/PanDora7855/task-manager-backend/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
// Category, status, and priority are presence-checked only; their values
// are not validated against the known enumerations.
type CreateTaskRequest struct {
	Title       string          `json:"title"       validate:"required"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"    validate:"required"`
	Status      domain.Status   `json:"status"      validate:"required"`
	Priority    domain.Priority `json:"priority"    validate:"required"`
}

// Validate rejects titles that are empty once surrounding whitespace is
// trimmed; the `required` tag alone accepts all-whitespace strings.
func (r CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.ErrTitleEmpty
	}
	return nil
}

// UpdateTaskRequest defines the payload for the partial update endpoint.
// Absent fields leave the stored task untouched.
type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *domain.Category `json:"category"`
	Status      *domain.Status   `json:"status"`
	Priority    *domain.Priority `json:"priority"`
}

// toUpdate converts the request into a domain patch.
func (r UpdateTaskRequest) toUpdate() domain.TaskUpdate {
	return domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    string(task.Category),
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
	}
}

// tasksToResponse converts a slice of tasks, never returning nil so the
// JSON encoding is always an array.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, taskToResponse(t))
	}
	return responses
}
