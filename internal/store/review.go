package store

import (
	"context"

	"github.com/hward/boardgames-api/internal/domain"
)

// ListReviewsParams carries the optional filters and ordering for a review
// listing. Zero values mean "no constraint": an empty SortBy defaults to
// created_at, an empty Order to DESC, an empty Category applies no filter,
// and non-positive Limit/Offset emit no LIMIT/OFFSET clause.
type ListReviewsParams struct {
	SortBy   string
	Order    string
	Category string
	Limit    int
	Offset   int
}

// ReviewStore defines the interface for review persistence.
type ReviewStore interface {
	// List retrieves review summaries with their derived comment counts.
	// Returns ErrInvalidSortColumn if SortBy is outside the allow-list of
	// sortable columns, ErrInvalidSortOrder if Order is neither ASC nor
	// DESC, and ErrCategoryNotFound if a category filter names a category
	// that does not exist. An existing category with no reviews yields an
	// empty slice, not an error.
	List(ctx context.Context, params ListReviewsParams) ([]domain.ReviewSummary, error)

	// GetByID retrieves a single review, including its body and derived
	// comment count.
	// Returns ErrNotFound if the review does not exist.
	GetByID(ctx context.Context, id int) (*domain.Review, error)

	// Create saves a new review after confirming its category and owner
	// exist; the checks and the insert run in one transaction so a failed
	// check cannot leave a row behind. The returned review is re-read from
	// the store and carries the assigned ID, timestamp and comment count.
	// Returns ErrCategoryNotFound or ErrUserNotFound if a reference is
	// missing, and validation errors from the domain Review if data is
	// invalid.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)

	// UpdateVotes atomically adds delta to the review's vote count and
	// returns the updated review. The result may go negative.
	// Returns ErrNotFound if the review does not exist.
	UpdateVotes(ctx context.Context, id, delta int) (*domain.Review, error)

	// Delete removes a review and, via the schema's cascade, its comments.
	// Returns ErrReviewNotFound if the review does not exist.
	Delete(ctx context.Context, id int) error
}
