package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PanDora7855/task-manager-backend/internal/api/shared"
	"github.com/PanDora7855/task-manager-backend/internal/domain"
	"github.com/PanDora7855/task-manager-backend/internal/platform/logger"
	"github.com/PanDora7855/task-manager-backend/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
// It returns all tasks, optionally narrowed by the `title` (case-insensitive
// substring) and `date` (creation timestamp prefix) query parameters.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	filter := store.TaskFilter{
		TitleContains: r.URL.Query().Get("title"),
		DatePrefix:    r.URL.Query().Get("date"),
	}

	tasks, err := h.taskStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed tasks",
		slog.Int("count", len(tasks)),
		slog.String("title_filter", filter.TitleContains),
		slog.String("date_filter", filter.DatePrefix))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("retrieved task", slog.String("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /tasks requests.
// The server assigns the ID and creation timestamp; title must be non-empty
// after trimming, and category/status/priority must be present.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))

		// Domain errors from the Validate hook carry their own safe
		// message; everything else is a validator tag failure.
		message := SanitizeValidationError(err)
		if errors.Is(err, domain.ErrTitleEmpty) {
			message = GetSafeErrorMessage(err)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return
	}

	task, err := domain.NewTask(req.Title, req.Description, req.Category, req.Status, req.Priority)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created task",
		slog.String("task_id", task.ID),
		slog.String("category", string(task.Category)))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PATCH /tasks/{id} requests.
// Supplied fields are merged into the stored task; absent fields are left
// untouched. ID and creation timestamp are immutable.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.String("task_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskStore.Update(r.Context(), id, req.toUpdate())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("updated task", slog.String("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deleted task", slog.String("task_id", id))
	w.WriteHeader(http.StatusNoContent)
}
