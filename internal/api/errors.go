package api

import (
	"errors"
	"net/http"

	"github.com/hward/boardgames-api/internal/api/shared"
	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/store"
)

// Client-facing error messages. Every error response body is one of these;
// internal error details never reach the client.
const (
	msgPageNotFound     = "Page not found."
	msgBadRequest       = "Bad request."
	msgResourceNotFound = "Resource not found."
	msgInvalidSort      = "Invalid sort query."
	msgInvalidOrder     = "Invalid order query."
	msgCategoryNotFound = "Category not found."
	msgUserNotFound     = "User not found."
	msgReviewNotFound   = "Review not found."
	msgCommentNotFound  = "Comment not found."
	msgMalformedBody    = "Malformed body."
	msgCategoryExists   = "Category already exists."
	msgInternalError    = "Internal Server Error."
)

// MapErrorToStatusCode maps store and domain errors to HTTP status codes.
// Handlers never translate errors themselves; every data-access failure
// funnels through here.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrInvalidSortColumn),
		errors.Is(err, store.ErrInvalidSortOrder),
		errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for an error.
// Entity-specific sentinels take precedence over the generic ones they
// wrap, so the order of the not-found checks matters.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrInvalidSortColumn):
		return msgInvalidSort

	case errors.Is(err, store.ErrInvalidSortOrder):
		return msgInvalidOrder

	case errors.Is(err, store.ErrInvalidInput):
		return msgBadRequest

	case errors.Is(err, domain.ErrValidation):
		return msgMalformedBody

	case errors.Is(err, store.ErrCategoryNotFound):
		return msgCategoryNotFound

	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound

	case errors.Is(err, store.ErrReviewNotFound):
		return msgReviewNotFound

	case errors.Is(err, store.ErrCommentNotFound):
		return msgCommentNotFound

	case errors.Is(err, store.ErrNotFound):
		return msgResourceNotFound

	case errors.Is(err, store.ErrCategoryExists):
		return msgCategoryExists

	default:
		return msgInternalError
	}
}

// NotFoundHandler writes the canonical 404 body for unknown routes.
// The router registers it for both unmatched paths and unsupported
// methods, so the two cases are indistinguishable to clients.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgPageNotFound)
}

// respondWithMappedError translates err through the mapping above and
// writes the error response, logging the underlying error.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
