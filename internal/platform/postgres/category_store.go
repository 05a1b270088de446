package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/platform/logger"
	"github.com/hward/boardgames-api/internal/store"
)

// CategoryStore implements store.CategoryStore using PostgreSQL.
type CategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCategoryStore creates a PostgreSQL implementation of the
// CategoryStore interface. The connection (or transaction) is managed by
// the caller. A nil logger falls back to slog.Default.
func NewCategoryStore(db store.DBTX, log *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &CategoryStore{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, description FROM categories ORDER BY slug`)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return categories, nil
}

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (slug, description) VALUES ($1, $2)`,
		category.Slug, category.Description)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate category slug",
				slog.String("slug", category.Slug))
			return fmt.Errorf("%w: %v", store.ErrCategoryExists, err)
		}
		log.Error("failed to create category",
			slog.String("slug", category.Slug),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("category created", slog.String("slug", category.Slug))
	return nil
}

// Exists reports whether a category with the given slug exists.
func (s *CategoryStore) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`,
		slug).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
