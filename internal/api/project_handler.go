package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/service"
)

// ProjectHandler handles project-related HTTP requests. The owner is always
// the authenticated principal; clients never name an owner in the payload.
type ProjectHandler struct {
	projectService service.ProjectService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService service.ProjectService, log *slog.Logger) *ProjectHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ProjectHandler{
		projectService: projectService,
		validator:      validator.New(),
		logger:         log.With("component", "project_handler"),
	}
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request data")
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), principal.UserID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewProjectResponse(project))
}

// Get handles GET /api/projects/{projectId}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, projectID, ok := getPrincipalAndPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(r.Context(), projectID, principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewProjectResponse(project))
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(r.Context(), principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewProjectResponses(projects))
}

// Update handles PUT /api/projects/{projectId}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, projectID, ok := getPrincipalAndPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	var req ProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request data")
		return
	}

	project, err := h.projectService.UpdateProject(r.Context(), projectID, principal.UserID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewProjectResponse(project))
}

// Delete handles DELETE /api/projects/{projectId}. Deleting a project also removes
// its tasks.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, projectID, ok := getPrincipalAndPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), projectID, principal.UserID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Progress handles GET /api/projects/{projectId}/progress.
func (h *ProjectHandler) Progress(w http.ResponseWriter, r *http.Request) {
	principal, projectID, ok := getPrincipalAndPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	progress, err := h.projectService.GetProgress(r.Context(), projectID, principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}
