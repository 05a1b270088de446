package store

import (
	"context"

	"github.com/hward/boardgames-api/internal/domain"
)

// UserStore defines the interface for user data retrieval. Users are
// read-only through the API surface, so there are no mutation methods.
type UserStore interface {
	// List retrieves all users.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
