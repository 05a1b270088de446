package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/platform/logger"
	"github.com/hward/boardgames-api/internal/store"
)

// sortableReviewColumns is the allow-list of columns a review listing may
// be ordered by. Parameter binding cannot substitute identifiers, so the
// sort column is interpolated into the query text; this list is the only
// thing standing between a query parameter and the SQL, and every column
// must be vetted here before interpolation.
var sortableReviewColumns = map[string]struct{}{
	"review_id":  {},
	"created_at": {},
	"title":      {},
	"designer":   {},
	"owner":      {},
	"category":   {},
	"votes":      {},
}

const (
	defaultSortColumn = "created_at"
	defaultSortOrder  = "DESC"
)

// ReviewStore implements store.ReviewStore using PostgreSQL. It holds a
// *sql.DB rather than store.DBTX because Create opens its own transaction.
type ReviewStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewReviewStore creates a PostgreSQL implementation of the ReviewStore
// interface. The connection pool is managed by the caller. A nil logger
// falls back to slog.Default.
func NewReviewStore(db *sql.DB, log *slog.Logger) *ReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ReviewStore{
		db:     db,
		logger: log.With(slog.String("component", "review_store")),
	}
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// List implements store.ReviewStore.List. The query left-joins comments
// and groups by review to derive comment_count; the category filter is a
// bound parameter, while sort column and direction are interpolated only
// after validation against the allow-list.
func (s *ReviewStore) List(ctx context.Context, params store.ListReviewsParams) ([]domain.ReviewSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = defaultSortColumn
	}
	if _, ok := sortableReviewColumns[sortBy]; !ok {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidSortColumn, params.SortBy)
	}

	order := strings.ToUpper(params.Order)
	if order == "" {
		order = defaultSortOrder
	}
	if order != "ASC" && order != "DESC" {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidSortOrder, params.Order)
	}

	var args []any
	var b strings.Builder
	b.WriteString(`
		SELECT reviews.review_id, reviews.title, reviews.designer,
		       reviews.owner, reviews.review_img_url, reviews.category,
		       reviews.created_at, reviews.votes,
		       COUNT(comments.comment_id)::int AS comment_count
		FROM reviews
		LEFT JOIN comments ON comments.review_id = reviews.review_id`)

	if params.Category != "" {
		exists, err := s.categoryExists(ctx, params.Category)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", store.ErrCategoryNotFound, params.Category)
		}
		args = append(args, params.Category)
		fmt.Fprintf(&b, " WHERE reviews.category = $%d", len(args))
	}

	b.WriteString(" GROUP BY reviews.review_id")
	// Identifiers validated above; safe to interpolate.
	fmt.Fprintf(&b, " ORDER BY reviews.%s %s", sortBy, order)

	if params.Limit > 0 {
		args = append(args, params.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if params.Offset > 0 {
		args = append(args, params.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		log.Error("failed to list reviews", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	reviews := []domain.ReviewSummary{}
	for rows.Next() {
		var r domain.ReviewSummary
		err := rows.Scan(&r.ID, &r.Title, &r.Designer, &r.Owner,
			&r.ReviewImgURL, &r.Category, &r.CreatedAt, &r.Votes,
			&r.CommentCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return reviews, nil
}

// GetByID implements store.ReviewStore.GetByID.
func (s *ReviewStore) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	return getReviewByID(ctx, s.db, id)
}

// getReviewByID runs the single-review aggregation against any DBTX so it
// can serve both the pool and an open transaction.
func getReviewByID(ctx context.Context, db store.DBTX, id int) (*domain.Review, error) {
	var r domain.Review
	err := db.QueryRowContext(ctx, `
		SELECT reviews.review_id, reviews.title, reviews.designer,
		       reviews.owner, reviews.review_img_url, reviews.review_body,
		       reviews.category, reviews.created_at, reviews.votes,
		       COUNT(comments.comment_id)::int AS comment_count
		FROM reviews
		LEFT JOIN comments ON comments.review_id = reviews.review_id
		WHERE reviews.review_id = $1
		GROUP BY reviews.review_id`, id).
		Scan(&r.ID, &r.Title, &r.Designer, &r.Owner, &r.ReviewImgURL,
			&r.ReviewBody, &r.Category, &r.CreatedAt, &r.Votes,
			&r.CommentCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: review %d", store.ErrNotFound, id)
		}
		return nil, MapError(err)
	}
	return &r, nil
}

// Create implements store.ReviewStore.Create. The existence checks and the
// insert share one transaction, so a missing category or owner rolls the
// insert back instead of leaving an orphaned row behind.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var categoryExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`,
		review.Category).Scan(&categoryExists)
	if err != nil {
		return nil, MapError(err)
	}
	if !categoryExists {
		return nil, fmt.Errorf("%w: %s", store.ErrCategoryNotFound, review.Category)
	}

	var ownerExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		review.Owner).Scan(&ownerExists)
	if err != nil {
		return nil, MapError(err)
	}
	if !ownerExists {
		return nil, fmt.Errorf("%w: %s", store.ErrUserNotFound, review.Owner)
	}

	var id int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO reviews (title, designer, owner, review_img_url, review_body, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING review_id`,
		review.Title, review.Designer, review.Owner,
		review.ReviewImgURL, review.ReviewBody, review.Category).Scan(&id)
	if err != nil {
		log.Error("failed to insert review",
			slog.String("title", review.Title),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	created, err := getReviewByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("review created",
		slog.Int("review_id", created.ID),
		slog.String("owner", created.Owner),
		slog.String("category", created.Category))
	return created, nil
}

// UpdateVotes implements store.ReviewStore.UpdateVotes. The increment runs
// in a single UPDATE so concurrent requests cannot lose each other's
// deltas; there is no floor on review votes.
func (s *ReviewStore) UpdateVotes(ctx context.Context, id, delta int) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updatedID int
	err := s.db.QueryRowContext(ctx, `
		UPDATE reviews SET votes = votes + $1
		WHERE review_id = $2
		RETURNING review_id`, delta, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: review %d", store.ErrNotFound, id)
		}
		log.Error("failed to update review votes",
			slog.Int("review_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return getReviewByID(ctx, s.db, updatedID)
}

// Delete implements store.ReviewStore.Delete.
func (s *ReviewStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM reviews WHERE review_id = $1`, id)
	if err != nil {
		log.Error("failed to delete review",
			slog.Int("review_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := checkRowsAffected(result, fmt.Errorf("%w: review %d", store.ErrReviewNotFound, id)); err != nil {
		return err
	}

	log.Info("review deleted", slog.Int("review_id", id))
	return nil
}

func (s *ReviewStore) categoryExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`,
		slug).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
