package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/hward/boardgames-api/internal/platform/postgres"
	"github.com/hward/boardgames-api/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: "comments_review_id_fkey"}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil stays nil",
			err:  nil,
			want: nil,
		},
		{
			name: "no rows maps to not found",
			err:  sql.ErrNoRows,
			want: store.ErrNotFound,
		},
		{
			name: "wrapped no rows maps to not found",
			err:  fmt.Errorf("query review: %w", sql.ErrNoRows),
			want: store.ErrNotFound,
		},
		{
			name: "unique violation maps to duplicate",
			err:  pgError("23505"),
			want: store.ErrDuplicate,
		},
		{
			name: "foreign key violation maps to not found",
			err:  pgError("23503"),
			want: store.ErrNotFound,
		},
		{
			name: "invalid text representation maps to invalid input",
			err:  pgError("22P02"),
			want: store.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := postgres.MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	t.Run("unrecognized errors pass through", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection refused")
		assert.Equal(t, err, postgres.MapError(err))
	})
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(pgError("23505")))
	assert.False(t, postgres.IsUniqueViolation(pgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain")))

	assert.True(t, postgres.IsForeignKeyViolation(pgError("23503")))
	assert.True(t, postgres.IsForeignKeyViolation(fmt.Errorf("insert: %w", pgError("23503"))))
	assert.False(t, postgres.IsForeignKeyViolation(pgError("23505")))
}
