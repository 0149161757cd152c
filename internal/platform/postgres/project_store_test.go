package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func storedProject(ownerID uuid.UUID) *domain.Project {
	now := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	return &domain.Project{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       "House move",
		Description: "Boxes and vans",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func projectRows(p *domain.Project) *sqlmock.Rows {
	return sqlmock.NewRows(
		[]string{"id", "user_id", "title", "description", "created_at", "updated_at"},
	).AddRow(p.ID.String(), p.UserID.String(), p.Title, p.Description, p.CreatedAt, p.UpdatedAt)
}

func TestProjectStore_Create(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewProjectStore(db, nil)
	project := storedProject(uuid.New())

	mock.ExpectExec(`INSERT INTO projects`).
		WithArgs(project.ID, project.UserID, project.Title, project.Description,
			project.CreatedAt, project.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), project))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectStore_Create_MissingOwner(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewProjectStore(db, nil)
	project := storedProject(uuid.New())

	mock.ExpectExec(`INSERT INTO projects`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "projects_user_id_fkey"})

	err := s.Create(context.Background(), project)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestProjectStore_Create_InvalidProject(t *testing.T) {
	db, _ := newStoreMock(t)
	s := NewProjectStore(db, nil)

	project := storedProject(uuid.New())
	project.Title = "   "

	err := s.Create(context.Background(), project)
	assert.ErrorIs(t, err, domain.ErrEmptyProjectTitle)
}

func TestProjectStore_GetByIDAndOwner(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewProjectStore(db, nil)

	ownerID := uuid.New()
	project := storedProject(ownerID)

	mock.ExpectQuery(`SELECT (.+) FROM projects`).
		WithArgs(project.ID, ownerID).
		WillReturnRows(projectRows(project))

	got, err := s.GetByIDAndOwner(context.Background(), project.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, ownerID, got.UserID)
}

func TestProjectStore_GetByIDAndOwner_NotFound(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewProjectStore(db, nil)

	// An empty result covers both a missing project and one owned by a
	// different user; the SQL owner scoping makes them identical.
	mock.ExpectQuery(`SELECT (.+) FROM projects`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "title", "description", "created_at", "updated_at"}))

	_, err := s.GetByIDAndOwner(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestProjectStore_Update_NotFound(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewProjectStore(db, nil)
	project := storedProject(uuid.New())

	mock.ExpectExec(`UPDATE projects`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), project)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestProjectStore_Delete(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewProjectStore(db, nil)

	id, ownerID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM projects`).
		WithArgs(id, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), id, ownerID))

	mock.ExpectExec(`DELETE FROM projects`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t,
		s.Delete(context.Background(), id, ownerID),
		store.ErrProjectNotFound)
}

func TestProjectStore_CountTasks(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewProjectStore(db, nil)
	projectID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(projectID).
		WillReturnRows(sqlmock.NewRows([]string{"count", "count"}).AddRow(7, 3))

	total, completed, err := s.CountTasks(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Equal(t, 3, completed)
}
