package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hward/boardgames-api/internal/testdb"
)

// doJSON issues a request against the router and decodes the JSON body
// into out (which may be nil for empty responses).
func doJSON(t *testing.T, router http.Handler, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out),
			"%s %s: body %q", method, path, rec.Body.String())
	}
	return rec
}

func errMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Msg
}

func TestAPIIntegration(t *testing.T) {
	db := testdb.New(t)
	testdb.Seed(t, db)

	router := newRouter(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("GET /api/reviews sorts and filters", func(t *testing.T) {
		var body struct {
			Reviews []struct {
				ReviewID     int    `json:"review_id"`
				Title        string `json:"title"`
				Votes        int    `json:"votes"`
				CommentCount int    `json:"comment_count"`
			} `json:"reviews"`
		}
		rec := doJSON(t, router, http.MethodGet, "/api/reviews", "", &body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, body.Reviews, 2)

		rec = doJSON(t, router, http.MethodGet, "/api/reviews?sort_by=votes&order=asc", "", &body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.LessOrEqual(t, body.Reviews[0].Votes, body.Reviews[1].Votes)

		rec = doJSON(t, router, http.MethodGet, "/api/reviews?category=dexterity", "", &body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, body.Reviews, 1)
		assert.Equal(t, "Jenga", body.Reviews[0].Title)
		assert.Equal(t, 0, body.Reviews[0].CommentCount)
	})

	t.Run("GET /api/reviews rejects bad sort and order", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/reviews?sort_by=password", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid sort query.", errMsg(t, rec))

		rec = doJSON(t, router, http.MethodGet, "/api/reviews?order=sideways", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid order query.", errMsg(t, rec))

		rec = doJSON(t, router, http.MethodGet, "/api/reviews?category=strategy", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Category not found.", errMsg(t, rec))
	})

	t.Run("review lifecycle", func(t *testing.T) {
		var created struct {
			Review struct {
				ReviewID     int    `json:"review_id"`
				Title        string `json:"title"`
				ReviewImgURL string `json:"review_img_url"`
				Votes        int    `json:"votes"`
			} `json:"review"`
		}
		rec := doJSON(t, router, http.MethodPost, "/api/reviews",
			`{"title":"Catan","designer":"Klaus Teuber","owner":"philippaclaire9",
			  "review_body":"Don't settle for less","category":"euro game"}`, &created)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotZero(t, created.Review.ReviewID)
		assert.Contains(t, created.Review.ReviewImgURL, "pexels.com")

		id := created.Review.ReviewID

		var patched struct {
			Review struct {
				Votes int `json:"votes"`
			} `json:"review"`
		}
		rec = doJSON(t, router, http.MethodPatch, "/api/reviews/1", `{"inc_votes":1}`, &patched)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 2, patched.Review.Votes)

		rec = doJSON(t, router, http.MethodDelete, "/api/reviews/"+strconv.Itoa(id), "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = doJSON(t, router, http.MethodGet, "/api/reviews/"+strconv.Itoa(id), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Resource not found.", errMsg(t, rec))
	})

	t.Run("review error paths", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/reviews/banana", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Bad request.", errMsg(t, rec))

		rec = doJSON(t, router, http.MethodPatch, "/api/reviews/1", `{"inc_votes":"one"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Bad request.", errMsg(t, rec))

		rec = doJSON(t, router, http.MethodPost, "/api/reviews",
			`{"title":"X","designer":"Y","owner":"ghost","review_body":"Z","category":"euro game"}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found.", errMsg(t, rec))
	})

	t.Run("comment lifecycle", func(t *testing.T) {
		var comments struct {
			Comments []struct {
				CommentID int `json:"comment_id"`
				Votes     int `json:"votes"`
			} `json:"comments"`
		}
		rec := doJSON(t, router, http.MethodGet, "/api/reviews/1/comments", "", &comments)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, comments.Comments, 3)

		var posted struct {
			Comment struct {
				CommentID int    `json:"comment_id"`
				Author    string `json:"author"`
				Votes     int    `json:"votes"`
			} `json:"comment"`
		}
		rec = doJSON(t, router, http.MethodPost, "/api/reviews/1/comments",
			`{"username":"mallionaire","body":"I need more beans..."}`, &posted)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "mallionaire", posted.Comment.Author)
		assert.Equal(t, 0, posted.Comment.Votes)

		var patched struct {
			Comment struct {
				Votes int `json:"votes"`
			} `json:"comment"`
		}
		rec = doJSON(t, router, http.MethodPatch, "/api/comments/1", `{"inc_votes":-100}`, &patched)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 0, patched.Comment.Votes, "comment votes clamp at zero")

		rec = doJSON(t, router, http.MethodDelete, "/api/comments/2", "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/comments/2", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Comment not found.", errMsg(t, rec))

		rec = doJSON(t, router, http.MethodPost, "/api/reviews/0/comments",
			`{"username":"mallionaire","body":"hello"}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Resource not found.", errMsg(t, rec))
	})

	t.Run("categories and users", func(t *testing.T) {
		var cats struct {
			Categories []struct {
				Slug string `json:"slug"`
			} `json:"categories"`
		}
		rec := doJSON(t, router, http.MethodGet, "/api/categories", "", &cats)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, cats.Categories)

		rec = doJSON(t, router, http.MethodPost, "/api/categories",
			`{"slug":"roll-and-write","description":"Roll dice, mark sheets"}`, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/categories",
			`{"slug":"roll-and-write","description":"again"}`, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Category already exists.", errMsg(t, rec))

		var user struct {
			User struct {
				Username string `json:"username"`
				Name     string `json:"name"`
			} `json:"user"`
		}
		rec = doJSON(t, router, http.MethodGet, "/api/users/mallionaire", "", &user)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "haz", user.User.Name)

		rec = doJSON(t, router, http.MethodGet, "/api/users/ghost", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found.", errMsg(t, rec))
	})
}
