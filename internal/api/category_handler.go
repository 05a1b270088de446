package api

import (
	"log/slog"
	"net/http"

	"github.com/hward/boardgames-api/internal/api/shared"
	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/platform/logger"
	"github.com/hward/boardgames-api/internal/store"
)

// CreateCategoryRequest is the body for POST /api/categories.
type CreateCategoryRequest struct {
	Slug        string `json:"slug"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

type categoryResponse struct {
	Category *domain.Category `json:"category"`
}

type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler backed by the given store.
func NewCategoryHandler(categories store.CategoryStore, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		categories: categories,
		logger:     log.With(slog.String("component", "category_handler")),
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoriesResponse{Categories: categories})
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid category request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMalformedBody)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMalformedBody)
		return
	}

	category, err := domain.NewCategory(req.Slug, req.Description)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.categories.Create(r.Context(), category); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, categoryResponse{Category: category})
}
