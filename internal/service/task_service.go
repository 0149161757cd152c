package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func nowUTC() time.Time { return time.Now().UTC() }

// TaskService provides task operations. Every operation first verifies that
// the parent project belongs to the caller; a project owned by someone else
// reads as store.ErrProjectNotFound before any task is touched.
type TaskService interface {
	// CreateTask creates a task in one of the caller's projects.
	CreateTask(ctx context.Context, projectID, ownerID uuid.UUID, title, description string, dueDate time.Time) (*domain.Task, error)

	// GetTask fetches a task from one of the caller's projects.
	GetTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID) (*domain.Task, error)

	// ListTasks returns the tasks of one of the caller's projects.
	ListTasks(ctx context.Context, projectID, ownerID uuid.UUID) ([]*domain.Task, error)

	// UpdateTask replaces a task's title, description, and due date.
	UpdateTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID, title, description string, dueDate time.Time) (*domain.Task, error)

	// CompleteTask marks a task as completed. Completing an already
	// completed task succeeds without further effect.
	CompleteTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID) (*domain.Task, error)

	// DeleteTask removes a task from one of the caller's projects.
	DeleteTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore    store.TaskStore
	projectStore store.ProjectStore
	logger       *slog.Logger
}

var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskStore store.TaskStore,
	projectStore store.ProjectStore,
	log *slog.Logger,
) *TaskServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &TaskServiceImpl{
		taskStore:    taskStore,
		projectStore: projectStore,
		logger:       log.With("component", "task_service"),
	}
}

// CreateTask implements TaskService.CreateTask.
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	projectID, ownerID uuid.UUID,
	title, description string,
	dueDate time.Time,
) (*domain.Task, error) {
	if err := s.verifyProjectOwnership(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(projectID, title, description, dueDate)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"project_id", projectID)
		return nil, err
	}

	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *TaskServiceImpl) GetTask(
	ctx context.Context,
	projectID, taskID, ownerID uuid.UUID,
) (*domain.Task, error) {
	if err := s.verifyProjectOwnership(ctx, projectID, ownerID); err != nil {
		return nil, err
	}
	return s.taskStore.GetByIDAndProject(ctx, taskID, projectID)
}

// ListTasks implements TaskService.ListTasks.
func (s *TaskServiceImpl) ListTasks(
	ctx context.Context,
	projectID, ownerID uuid.UUID,
) ([]*domain.Task, error) {
	if err := s.verifyProjectOwnership(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	tasks, err := s.taskStore.ListByProject(ctx, projectID)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"project_id", projectID)
		return nil, err
	}

	s.logger.Debug("listed tasks",
		"project_id", projectID,
		"count", len(tasks))
	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask.
func (s *TaskServiceImpl) UpdateTask(
	ctx context.Context,
	projectID, taskID, ownerID uuid.UUID,
	title, description string,
	dueDate time.Time,
) (*domain.Task, error) {
	if err := s.verifyProjectOwnership(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	task, err := s.taskStore.GetByIDAndProject(ctx, taskID, projectID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.DueDate = dueDate
	task.UpdatedAt = nowUTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", taskID)
		return nil, err
	}

	return task, nil
}

// CompleteTask implements TaskService.CompleteTask.
func (s *TaskServiceImpl) CompleteTask(
	ctx context.Context,
	projectID, taskID, ownerID uuid.UUID,
) (*domain.Task, error) {
	if err := s.verifyProjectOwnership(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	task, err := s.taskStore.GetByIDAndProject(ctx, taskID, projectID)
	if err != nil {
		return nil, err
	}

	if task.Completed {
		s.logger.Debug("task already completed", "task_id", taskID)
	}
	task.Complete()

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to mark task completed",
			"error", err,
			"task_id", taskID)
		return nil, err
	}

	s.logger.Info("task completed", "task_id", taskID)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *TaskServiceImpl) DeleteTask(
	ctx context.Context,
	projectID, taskID, ownerID uuid.UUID,
) error {
	if err := s.verifyProjectOwnership(ctx, projectID, ownerID); err != nil {
		return err
	}
	return s.taskStore.Delete(ctx, taskID, projectID)
}

// verifyProjectOwnership confirms the project exists and belongs to the
// caller. Missing and not-owned are deliberately the same error.
func (s *TaskServiceImpl) verifyProjectOwnership(
	ctx context.Context,
	projectID, ownerID uuid.UUID,
) error {
	_, err := s.projectStore.GetByIDAndOwner(ctx, projectID, ownerID)
	return err
}
