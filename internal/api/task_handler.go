package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/service"
)

// TaskHandler handles task-related HTTP requests. Tasks are always addressed
// through their parent project, and the service layer rejects requests whose
// project belongs to someone else.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      log.With("component", "task_handler"),
	}
}

// getTaskPath extracts the project and task IDs from the request path,
// writing the error response itself on failure.
func (h *TaskHandler) getTaskPath(w http.ResponseWriter, r *http.Request) (shared.Principal, uuid.UUID, uuid.UUID, bool) {
	principal, projectID, ok := getPrincipalAndPathUUID(w, r, "projectId")
	if !ok {
		return shared.Principal{}, uuid.Nil, uuid.Nil, false
	}

	taskID, err := getPathUUID(r, "taskId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return shared.Principal{}, uuid.Nil, uuid.Nil, false
	}

	return principal, projectID, taskID, true
}

// Create handles POST /api/projects/{projectId}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, projectID, ok := getPrincipalAndPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	var req TaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request data")
		return
	}

	task, err := h.taskService.CreateTask(
		r.Context(), projectID, principal.UserID, req.Title, req.Description, req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// Get handles GET /api/projects/{projectId}/tasks/{taskId}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, projectID, taskID, ok := h.getTaskPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), projectID, taskID, principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// List handles GET /api/projects/{projectId}/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, projectID, ok := getPrincipalAndPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), projectID, principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponses(tasks))
}

// Update handles PUT /api/projects/{projectId}/tasks/{taskId}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, projectID, taskID, ok := h.getTaskPath(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request data")
		return
	}

	task, err := h.taskService.UpdateTask(
		r.Context(), projectID, taskID, principal.UserID, req.Title, req.Description, req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Complete handles PATCH /api/projects/{projectId}/tasks/{taskId}/complete.
// Completing an already completed task succeeds and returns the task as-is.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	principal, projectID, taskID, ok := h.getTaskPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CompleteTask(r.Context(), projectID, taskID, principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Delete handles DELETE /api/projects/{projectId}/tasks/{taskId}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, projectID, taskID, ok := h.getTaskPath(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), projectID, taskID, principal.UserID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
