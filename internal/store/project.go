package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
// Every read is scoped by owner so a caller can never see another tenant's
// projects; a project owned by someone else behaves exactly like a missing
// one.
type ProjectStore interface {
	// Create saves a new project to the store.
	Create(ctx context.Context, project *domain.Project) error

	// GetByIDAndOwner retrieves a project by ID, restricted to the given
	// owner. Returns ErrProjectNotFound if the project does not exist or
	// belongs to a different user.
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)

	// ListByOwner returns all projects owned by the given user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)

	// Update modifies an existing project's title and description.
	// Returns ErrProjectNotFound if the project does not exist or belongs to
	// a different user.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project and (via cascade) its tasks.
	// Returns ErrProjectNotFound if the project does not exist or belongs to
	// a different user.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// CountTasks reports the total and completed task counts for a project.
	CountTasks(ctx context.Context, projectID uuid.UUID) (total, completed int, err error)

	// WithTx returns a new ProjectStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ProjectStore
}
