package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/PanDora7855/task-manager-backend/internal/api"
	apiMiddleware "github.com/PanDora7855/task-manager-backend/internal/api/middleware"
	"github.com/PanDora7855/task-manager-backend/internal/api/shared"
)

// serverInfo is the payload served at the root endpoint: a short service
// description plus a map of the available endpoints.
type serverInfo struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)

	// Register routes
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Patch("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	// Server info endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, serverInfo{
			Name:    "task-manager-backend",
			Version: "1.0.0",
			Endpoints: map[string]string{
				"GET /":              "server info",
				"GET /tasks":         "list tasks, filterable by ?title= and ?date=",
				"POST /tasks":        "create a task",
				"GET /tasks/{id}":    "get a task",
				"PATCH /tasks/{id}":  "partially update a task",
				"DELETE /tasks/{id}": "delete a task",
			},
		})
	})

	// Any unmatched route or method yields the standard JSON error body.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
	})

	return r
}
