package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// ProjectStore implements the store.ProjectStore interface using a
// PostgreSQL database as the storage backend. All lookups are owner-scoped
// in SQL (WHERE id = $1 AND user_id = $2); the store never returns another
// tenant's rows.
type ProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProjectStore creates a new PostgreSQL implementation of the
// ProjectStore interface.
func NewProjectStore(db store.DBTX, log *slog.Logger) *ProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ProjectStore{
		db:     db,
		logger: log.With(slog.String("component", "project_store")),
	}
}

var _ store.ProjectStore = (*ProjectStore)(nil)

// Create implements store.ProjectStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *ProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, user_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		project.ID,
		project.UserID,
		project.Title,
		project.Description,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s not found", store.ErrInvalidEntity, project.UserID)
		}
		log.Error("failed to create project",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()))
		return MapError(err)
	}

	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("user_id", project.UserID.String()))
	return nil
}

// GetByIDAndOwner implements store.ProjectStore.GetByIDAndOwner.
func (s *ProjectStore) GetByIDAndOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Project, error) {
	query := `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM projects
		WHERE id = $1 AND user_id = $2
	`
	row := s.db.QueryRowContext(ctx, query, id, ownerID)

	var project domain.Project
	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Title,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		return nil, MapError(err)
	}
	return &project, nil
}

// ListByOwner implements store.ProjectStore.ListByOwner.
func (s *ProjectStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Project, error) {
	query := `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID,
			&project.UserID,
			&project.Title,
			&project.Description,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return projects, nil
}

// Update implements store.ProjectStore.Update. The UPDATE itself is
// owner-scoped, so a project owned by someone else reports not found.
func (s *ProjectStore) Update(ctx context.Context, project *domain.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		project.Title,
		project.Description,
		project.UpdatedAt,
		project.ID,
		project.UserID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrProjectNotFound)
}

// Delete implements store.ProjectStore.Delete. Tasks are removed by the
// ON DELETE CASCADE constraint on tasks.project_id.
func (s *ProjectStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM projects WHERE id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	log.Info("project deleted", slog.String("project_id", id.String()))
	return nil
}

// CountTasks implements store.ProjectStore.CountTasks.
func (s *ProjectStore) CountTasks(
	ctx context.Context,
	projectID uuid.UUID,
) (total, completed int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)
		FROM tasks
		WHERE project_id = $1
	`
	err = s.db.QueryRowContext(ctx, query, projectID).Scan(&total, &completed)
	if err != nil {
		return 0, 0, MapError(err)
	}
	return total, completed, nil
}

// WithTx implements store.ProjectStore.WithTx.
func (s *ProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &ProjectStore{db: tx, logger: s.logger}
}
