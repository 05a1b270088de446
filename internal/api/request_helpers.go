package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// getPathInt extracts a numeric path parameter. A missing or non-numeric
// value is a client error; callers respond 400 "Bad request.".
func getPathInt(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s is not numeric: %q", param, raw)
	}
	return id, nil
}

// getQueryInt extracts an optional non-negative integer query parameter,
// returning 0 when the parameter is absent.
func getQueryInt(r *http.Request, param string) (int, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("query parameter %s must be a non-negative integer: %q", param, raw)
	}
	return n, nil
}
