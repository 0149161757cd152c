package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil error", err: nil, wantNil: true},
		{
			name:   "no rows",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique_idx"},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "tasks_project_id_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation",
			err:    &pgconn.PgError{Code: "23502", ColumnName: "title"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "wrapped pg error",
			err:    fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23505"}),
			wantIs: store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tc.err)
			if tc.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantIs)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	unknown := errors.New("network hiccup")
	assert.Equal(t, unknown, MapError(unknown))
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))

	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", unique)))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	notFound := errors.New("row gone")

	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), notFound))
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), notFound), notFound)

	err := CheckRowsAffected(sqlmock.NewErrorResult(errors.New("driver error")), notFound)
	require.Error(t, err)
	assert.NotErrorIs(t, err, notFound)
}
