package store

import (
	"context"

	"github.com/hward/boardgames-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// List retrieves all categories. An empty slice is a valid result.
	List(ctx context.Context) ([]domain.Category, error)

	// Create saves a new category.
	// Returns ErrCategoryExists if the slug is already taken.
	// Returns validation errors from the domain Category if data is invalid.
	Create(ctx context.Context, category *domain.Category) error
}
