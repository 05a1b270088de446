package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hward/boardgames-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the SQLSTATE for unique constraint violations.
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the SQLSTATE for foreign key violations,
	// raised when a write references a row that does not exist.
	foreignKeyViolationCode = "23503"

	// invalidTextRepresentationCode is the SQLSTATE raised when a value
	// cannot be coerced to the column type, e.g. a non-numeric string
	// bound to an integer parameter.
	invalidTextRepresentationCode = "22P02"
)

// MapError maps a database error to the appropriate store sentinel error,
// wrapping the original so context is preserved for logging. All store
// implementations in this package route their errors through it.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			// The referenced row is absent, which the API reports as a
			// missing resource rather than a bad request.
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				store.ErrNotFound, pgErr.ConstraintName, err)
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
		}
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// checkRowsAffected returns notFoundErr if the result affected no rows.
// Used after UPDATE and DELETE statements where zero affected rows means
// the target does not exist.
func checkRowsAffected(result sql.Result, notFoundErr error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return notFoundErr
	}
	return nil
}
