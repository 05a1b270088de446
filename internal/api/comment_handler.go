package api

import (
	"log/slog"
	"net/http"

	"github.com/hward/boardgames-api/internal/api/shared"
	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/platform/logger"
	"github.com/hward/boardgames-api/internal/store"
)

// CreateCommentRequest is the body for POST /api/reviews/{review_id}/comments.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"     validate:"required"`
}

type commentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

type commentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentHandler creates a CommentHandler backed by the given store.
func NewCommentHandler(comments store.CommentStore, log *slog.Logger) *CommentHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		logger:   log.With(slog.String("component", "comment_handler")),
	}
}

// ListByReview handles GET /api/reviews/{review_id}/comments.
func (h *CommentHandler) ListByReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := getPathInt(r, "review_id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	comments, err := h.comments.ListByReview(r.Context(), reviewID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentsResponse{Comments: comments})
}

// Create handles POST /api/reviews/{review_id}/comments. A review or user
// that does not exist surfaces as a foreign-key violation from the store
// and maps to 404.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	reviewID, err := getPathInt(r, "review_id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid comment request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMalformedBody)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMalformedBody)
		return
	}

	comment, err := domain.NewComment(req.Username, req.Body, reviewID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	created, err := h.comments.Create(r.Context(), comment)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, commentResponse{Comment: created})
}

// UpdateVotes handles PATCH /api/comments/{comment_id}. Decrements clamp
// at zero in the store.
func (h *CommentHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "comment_id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	var req UpdateVotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	comment, err := h.comments.UpdateVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, commentResponse{Comment: comment})
}

// Delete handles DELETE /api/comments/{comment_id}. Not idempotent:
// deleting an already-deleted comment is a 404.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "comment_id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	if _, err := h.comments.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
