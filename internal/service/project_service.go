package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// ProjectService provides project operations scoped to the calling user.
// The owner ID always comes from the request principal, never from the
// request body, so one tenant cannot act on another's projects.
type ProjectService interface {
	// CreateProject creates a new project owned by the given user.
	CreateProject(ctx context.Context, ownerID uuid.UUID, title, description string) (*domain.Project, error)

	// GetProject fetches one of the caller's projects.
	// Returns store.ErrProjectNotFound for missing or not-owned projects.
	GetProject(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)

	// ListProjects returns all projects owned by the caller.
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)

	// UpdateProject replaces the title and description of one of the
	// caller's projects.
	UpdateProject(ctx context.Context, id, ownerID uuid.UUID, title, description string) (*domain.Project, error)

	// DeleteProject removes one of the caller's projects and its tasks.
	DeleteProject(ctx context.Context, id, ownerID uuid.UUID) error

	// GetProgress reports task completion for one of the caller's projects.
	GetProgress(ctx context.Context, id, ownerID uuid.UUID) (domain.ProjectProgress, error)
}

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectStore store.ProjectStore
	logger       *slog.Logger
}

var _ ProjectService = (*ProjectServiceImpl)(nil)

// NewProjectService creates a new ProjectService.
func NewProjectService(projectStore store.ProjectStore, log *slog.Logger) *ProjectServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &ProjectServiceImpl{
		projectStore: projectStore,
		logger:       log.With("component", "project_service"),
	}
}

// CreateProject implements ProjectService.CreateProject.
func (s *ProjectServiceImpl) CreateProject(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
) (*domain.Project, error) {
	project, err := domain.NewProject(ownerID, title, description)
	if err != nil {
		return nil, err
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		s.logger.Error("failed to create project",
			"error", err,
			"user_id", ownerID)
		return nil, err
	}

	return project, nil
}

// GetProject implements ProjectService.GetProject.
func (s *ProjectServiceImpl) GetProject(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Project, error) {
	return s.projectStore.GetByIDAndOwner(ctx, id, ownerID)
}

// ListProjects implements ProjectService.ListProjects.
func (s *ProjectServiceImpl) ListProjects(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Project, error) {
	projects, err := s.projectStore.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list projects",
			"error", err,
			"user_id", ownerID)
		return nil, err
	}

	s.logger.Debug("listed projects",
		"user_id", ownerID,
		"count", len(projects))
	return projects, nil
}

// UpdateProject implements ProjectService.UpdateProject. The fetch and the
// update are both owner-scoped, so a stranger's project reads as missing.
func (s *ProjectServiceImpl) UpdateProject(
	ctx context.Context,
	id, ownerID uuid.UUID,
	title, description string,
) (*domain.Project, error) {
	project, err := s.projectStore.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	project.Title = title
	project.Description = description
	project.UpdatedAt = nowUTC()

	if err := s.projectStore.Update(ctx, project); err != nil {
		s.logger.Error("failed to update project",
			"error", err,
			"project_id", id)
		return nil, err
	}

	return project, nil
}

// DeleteProject implements ProjectService.DeleteProject.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.projectStore.Delete(ctx, id, ownerID)
}

// GetProgress implements ProjectService.GetProgress.
func (s *ProjectServiceImpl) GetProgress(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (domain.ProjectProgress, error) {
	project, err := s.projectStore.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return domain.ProjectProgress{}, err
	}

	total, completed, err := s.projectStore.CountTasks(ctx, project.ID)
	if err != nil {
		s.logger.Error("failed to count tasks",
			"error", err,
			"project_id", id)
		return domain.ProjectProgress{}, err
	}

	return domain.NewProjectProgress(project, total, completed), nil
}
