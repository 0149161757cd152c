package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. Tasks are
// always addressed through their parent project; ownership checks against
// the caller happen one level up, on the project.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the parent project does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByIDAndProject retrieves a task by ID within the given project.
	// Returns ErrTaskNotFound if the task does not exist in that project.
	GetByIDAndProject(ctx context.Context, id, projectID uuid.UUID) (*domain.Task, error)

	// ListByProject returns all tasks in a project ordered by due date.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)

	// Update modifies an existing task.
	// Returns ErrTaskNotFound if the task does not exist in that project.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store.
	// Returns ErrTaskNotFound if the task does not exist in that project.
	Delete(ctx context.Context, id, projectID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}
