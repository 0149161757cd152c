package postgres

import (
	"context"
	"database/sql"
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

func newStoreMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func storedUser() *domain.User {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:             uuid.New(),
		Email:          "alice@example.com",
		DisplayName:    "Alice",
		HashedPassword: "$2a$10$somethingbcryptlike",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func userRows(u *domain.User) *sqlmock.Rows {
	return sqlmock.NewRows(
		[]string{"id", "email", "display_name", "hashed_password", "created_at", "updated_at"},
	).AddRow(u.ID.String(), u.Email, u.DisplayName, u.HashedPassword, u.CreatedAt, u.UpdatedAt)
}

func TestUserStore_Create(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewUserStore(db, nil)
	user := storedUser()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.Email, user.DisplayName, user.HashedPassword,
			user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_Create_RejectsMissingHash(t *testing.T) {
	db, _ := newStoreMock(t)
	s := NewUserStore(db, nil)

	user := storedUser()
	user.HashedPassword = ""

	// The store refuses before touching the database.
	err := s.Create(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrEmptyHashedPassword)
}

func TestUserStore_Create_DuplicateEmail(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewUserStore(db, nil)
	user := storedUser()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique_idx"})

	err := s.Create(context.Background(), user)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUserStore_GetByEmail(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewUserStore(db, nil)
	user := storedUser()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(user.Email).
		WillReturnRows(userRows(user))

	got, err := s.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.HashedPassword, got.HashedPassword)
}

func TestUserStore_GetByEmail_NotFound(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewUserStore(db, nil)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "display_name", "hashed_password", "created_at", "updated_at"}))

	_, err := s.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStore_GetByID_NotFound(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewUserStore(db, nil)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "display_name", "hashed_password", "created_at", "updated_at"}))

	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
