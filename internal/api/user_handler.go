package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hward/boardgames-api/internal/api/shared"
	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/store"
)

type userResponse struct {
	User *domain.User `json:"user"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

// UserHandler handles user-related HTTP requests. Users are read-only
// through this API.
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler backed by the given store.
func NewUserHandler(users store.UserStore, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: log.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersResponse{Users: users})
}

// GetByUsername handles GET /api/users/{username}.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userResponse{User: user})
}
