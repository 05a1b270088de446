package api

import (
	_ "embed"
	"log/slog"
	"net/http"
)

// endpointsJSON is the static endpoint documentation served at GET /api.
//
//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsHandler serves the API's self-description document.
type EndpointsHandler struct {
	logger *slog.Logger
}

// NewEndpointsHandler creates an EndpointsHandler.
func NewEndpointsHandler(log *slog.Logger) *EndpointsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &EndpointsHandler{
		logger: log.With(slog.String("component", "endpoints_handler")),
	}
}

// Get handles GET /api. The document is embedded at build time, so this
// never touches the database.
func (h *EndpointsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(endpointsJSON); err != nil {
		h.logger.Error("failed to write endpoints response",
			slog.String("error", err.Error()))
	}
}
