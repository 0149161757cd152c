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

func storedTask(projectID uuid.UUID) *domain.Task {
	now := time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC)
	return &domain.Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       "Pack kitchen",
		Description: "Label everything",
		DueDate:     now.Add(96 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func taskRows(task *domain.Task) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "project_id", "title", "description", "due_date",
		"completed", "created_at", "updated_at",
	}).AddRow(
		task.ID.String(), task.ProjectID.String(), task.Title, task.Description,
		task.DueDate, task.Completed, task.CreatedAt, task.UpdatedAt,
	)
}

func TestTaskStore_Create(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewTaskStore(db, nil)
	task := storedTask(uuid.New())

	mock.ExpectExec(`INSERT INTO tasks`).
		WithArgs(task.ID, task.ProjectID, task.Title, task.Description,
			task.DueDate, task.Completed, task.CreatedAt, task.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), task))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_Create_MissingProject(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewTaskStore(db, nil)
	task := storedTask(uuid.New())

	mock.ExpectExec(`INSERT INTO tasks`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "tasks_project_id_fkey"})

	err := s.Create(context.Background(), task)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestTaskStore_GetByIDAndProject(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewTaskStore(db, nil)

	projectID := uuid.New()
	task := storedTask(projectID)

	mock.ExpectQuery(`SELECT (.+) FROM tasks`).
		WithArgs(task.ID, projectID).
		WillReturnRows(taskRows(task))

	got, err := s.GetByIDAndProject(context.Background(), task.ID, projectID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, projectID, got.ProjectID)
	assert.False(t, got.Completed)
}

func TestTaskStore_GetByIDAndProject_NotFound(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewTaskStore(db, nil)

	mock.ExpectQuery(`SELECT (.+) FROM tasks`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "project_id", "title", "description", "due_date",
			"completed", "created_at", "updated_at",
		}))

	_, err := s.GetByIDAndProject(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStore_Update_NotFound(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewTaskStore(db, nil)
	task := storedTask(uuid.New())

	mock.ExpectExec(`UPDATE tasks`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.Update(context.Background(), task), store.ErrTaskNotFound)
}

func TestTaskStore_Delete(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewTaskStore(db, nil)

	id, projectID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM tasks`).
		WithArgs(id, projectID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), id, projectID))

	mock.ExpectExec(`DELETE FROM tasks`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t,
		s.Delete(context.Background(), id, projectID),
		store.ErrTaskNotFound)
}
