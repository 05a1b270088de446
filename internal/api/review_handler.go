package api

import (
	"log/slog"
	"net/http"

	"github.com/hward/boardgames-api/internal/api/shared"
	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/platform/logger"
	"github.com/hward/boardgames-api/internal/store"
)

// CreateReviewRequest is the body for POST /api/reviews. ReviewImgURL is
// optional; an omitted value gets the placeholder default.
type CreateReviewRequest struct {
	Title        string `json:"title"          validate:"required"`
	Designer     string `json:"designer"       validate:"required"`
	Owner        string `json:"owner"          validate:"required"`
	ReviewBody   string `json:"review_body"    validate:"required"`
	Category     string `json:"category"       validate:"required"`
	ReviewImgURL string `json:"review_img_url"`
}

// UpdateVotesRequest is the body for the vote-increment PATCH endpoints.
// IncVotes is a pointer so an absent field is distinguishable from zero.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}

type reviewResponse struct {
	Review *domain.Review `json:"review"`
}

type reviewsResponse struct {
	Reviews []domain.ReviewSummary `json:"reviews"`
}

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	reviews store.ReviewStore
	logger  *slog.Logger
}

// NewReviewHandler creates a ReviewHandler backed by the given store.
func NewReviewHandler(reviews store.ReviewStore, log *slog.Logger) *ReviewHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ReviewHandler{
		reviews: reviews,
		logger:  log.With(slog.String("component", "review_handler")),
	}
}

// List handles GET /api/reviews. Sort, order and category come from query
// parameters; the store validates sort and order against its allow-list.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := getQueryInt(r, "limit")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}
	offset, err := getQueryInt(r, "offset")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	params := store.ListReviewsParams{
		SortBy:   query.Get("sort_by"),
		Order:    query.Get("order"),
		Category: query.Get("category"),
		Limit:    limit,
		Offset:   offset,
	}

	reviews, err := h.reviews.List(r.Context(), params)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewsResponse{Reviews: reviews})
}

// GetByID handles GET /api/reviews/{review_id}.
func (h *ReviewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "review_id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	review, err := h.reviews.GetByID(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewResponse{Review: review})
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid review request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMalformedBody)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMalformedBody)
		return
	}

	review, err := domain.NewReview(req.Title, req.Designer, req.Owner,
		req.ReviewBody, req.Category, req.ReviewImgURL)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	created, err := h.reviews.Create(r.Context(), review)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reviewResponse{Review: created})
}

// UpdateVotes handles PATCH /api/reviews/{review_id}.
func (h *ReviewHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "review_id")
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

	review, err := h.reviews.UpdateVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, reviewResponse{Review: review})
}

// Delete handles DELETE /api/reviews/{review_id}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "review_id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest)
		return
	}

	if err := h.reviews.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
