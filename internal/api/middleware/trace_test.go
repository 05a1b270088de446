package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hward/boardgames-api/internal/api/middleware"
	"github.com/hward/boardgames-api/internal/api/shared"
	"github.com/hward/boardgames-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	var seenTraceID string
	var seenLogger *slog.Logger

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		seenLogger, _ = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.Trace(slog.Default())(inner)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seenTraceID, "trace ID should be set in the request context")
	assert.NotNil(t, seenLogger, "request-scoped logger should be set in the request context")
}

func TestTraceGeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	ids := map[string]struct{}{}
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[shared.GetTraceID(r.Context())] = struct{}{}
	})
	handler := middleware.Trace(nil)(inner)

	for range 5 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api", nil))
	}

	assert.Len(t, ids, 5)
}
