package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PanDora7855/task-manager-backend/internal/domain"
	"github.com/PanDora7855/task-manager-backend/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrTitleEmpty),
		errors.Is(err, domain.ErrCategoryEmpty),
		errors.Is(err, domain.ErrStatusEmpty),
		errors.Is(err, domain.ErrPriorityEmpty),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return "Task already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrTitleEmpty):
		return "Title cannot be empty"

	case errors.Is(err, domain.ErrCategoryEmpty):
		return "Category is required"

	case errors.Is(err, domain.ErrStatusEmpty):
		return "Status is required"

	case errors.Is(err, domain.ErrPriorityEmpty):
		return "Priority is required"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid task data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'CreateTaskRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
