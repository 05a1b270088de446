package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below, and is also what foreign-key violations surface as: a
	// write that references a missing row is a "resource not found" from
	// the caller's point of view.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a category with an existing slug).
	ErrDuplicate = errors.New("resource already exists")

	// ErrInvalidInput is returned when the database rejects a value's text
	// representation, such as a non-numeric string bound to an integer
	// column.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSortColumn is returned by review listing when the requested
	// sort column is outside the allow-list of sortable columns.
	ErrInvalidSortColumn = errors.New("invalid sort column")

	// ErrInvalidSortOrder is returned by review listing when the requested
	// order is neither ASC nor DESC.
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// Entity-specific "not found" errors

	// ErrCategoryNotFound indicates that the referenced category does not exist.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrReviewNotFound indicates that the referenced review does not exist.
	ErrReviewNotFound = fmt.Errorf("%w: review", ErrNotFound)

	// ErrCommentNotFound indicates that the referenced comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrCategoryExists indicates that a category with the given slug
	// already exists.
	ErrCategoryExists = fmt.Errorf("%w: category slug", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including the entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
