package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/platform/logger"
	"github.com/hward/boardgames-api/internal/store"
)

// CommentStore implements store.CommentStore using PostgreSQL.
type CommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCommentStore creates a PostgreSQL implementation of the CommentStore
// interface. The connection (or transaction) is managed by the caller.
// A nil logger falls back to slog.Default.
func NewCommentStore(db store.DBTX, log *slog.Logger) *CommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &CommentStore{
		db:     db,
		logger: log.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*CommentStore)(nil)

// ListByReview implements store.CommentStore.ListByReview.
func (s *CommentStore) ListByReview(ctx context.Context, reviewID int) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var reviewExists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE review_id = $1)`,
		reviewID).Scan(&reviewExists)
	if err != nil {
		return nil, MapError(err)
	}
	if !reviewExists {
		return nil, fmt.Errorf("%w: review %d", store.ErrReviewNotFound, reviewID)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT comment_id, author, body, review_id, created_at, votes
		FROM comments
		WHERE review_id = $1
		ORDER BY comment_id`, reviewID)
	if err != nil {
		log.Error("failed to list comments",
			slog.Int("review_id", reviewID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(&c.ID, &c.Author, &c.Body, &c.ReviewID,
			&c.CreatedAt, &c.Votes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return comments, nil
}

// Create implements store.CommentStore.Create. No existence prechecks:
// an absent review or author is caught by the schema's foreign keys and
// mapped to store.ErrNotFound.
func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	var created domain.Comment
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (author, body, review_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, author, body, review_id, created_at, votes`,
		comment.Author, comment.Body, comment.ReviewID).
		Scan(&created.ID, &created.Author, &created.Body, &created.ReviewID,
			&created.CreatedAt, &created.Votes)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int("review_id", comment.ReviewID),
				slog.String("author", comment.Author))
		} else {
			log.Error("failed to create comment",
				slog.Int("review_id", comment.ReviewID),
				slog.String("error", err.Error()))
		}
		return nil, MapError(err)
	}

	log.Info("comment created",
		slog.Int("comment_id", created.ID),
		slog.Int("review_id", created.ReviewID),
		slog.String("author", created.Author))
	return &created, nil
}

// UpdateVotes implements store.CommentStore.UpdateVotes. GREATEST clamps
// the result at zero in the same statement that applies the delta, so the
// floor holds under concurrent updates too.
func (s *CommentStore) UpdateVotes(ctx context.Context, id, delta int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated domain.Comment
	err := s.db.QueryRowContext(ctx, `
		UPDATE comments SET votes = GREATEST(0, votes + $1)
		WHERE comment_id = $2
		RETURNING comment_id, author, body, review_id, created_at, votes`,
		delta, id).
		Scan(&updated.ID, &updated.Author, &updated.Body, &updated.ReviewID,
			&updated.CreatedAt, &updated.Votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: comment %d", store.ErrCommentNotFound, id)
		}
		log.Error("failed to update comment votes",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &updated, nil
}

// Delete implements store.CommentStore.Delete. DELETE ... RETURNING hands
// back the removed row; no row means the comment was already gone, which
// is an error rather than a no-op.
func (s *CommentStore) Delete(ctx context.Context, id int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted domain.Comment
	err := s.db.QueryRowContext(ctx, `
		DELETE FROM comments WHERE comment_id = $1
		RETURNING comment_id, author, body, review_id, created_at, votes`, id).
		Scan(&deleted.ID, &deleted.Author, &deleted.Body, &deleted.ReviewID,
			&deleted.CreatedAt, &deleted.Votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: comment %d", store.ErrCommentNotFound, id)
		}
		log.Error("failed to delete comment",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("comment deleted", slog.Int("comment_id", deleted.ID))
	return &deleted, nil
}
