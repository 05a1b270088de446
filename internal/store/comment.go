package store

import (
	"context"

	"github.com/hward/boardgames-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// ListByReview retrieves all comments on the given review.
	// Returns ErrReviewNotFound if the review does not exist; an existing
	// review with no comments yields an empty slice.
	ListByReview(ctx context.Context, reviewID int) ([]domain.Comment, error)

	// Create saves a new comment and returns it with the assigned ID and
	// timestamp. Referential integrity is left to the database: an absent
	// review or author surfaces as a foreign-key violation, which maps to
	// ErrNotFound.
	// Returns validation errors from the domain Comment if data is invalid.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// UpdateVotes atomically adds delta to the comment's vote count,
	// clamping the result at zero, and returns the updated comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	UpdateVotes(ctx context.Context, id, delta int) (*domain.Comment, error)

	// Delete removes a comment and returns the deleted row. The delete is
	// not idempotent: deleting an absent comment is an error.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id int) (*domain.Comment, error)
}
