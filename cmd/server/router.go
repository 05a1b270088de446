package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hward/boardgames-api/internal/api"
	apimiddleware "github.com/hward/boardgames-api/internal/api/middleware"
	"github.com/hward/boardgames-api/internal/platform/postgres"
)

// newRouter builds the chi router with all middleware, handlers and
// routes. Unknown paths and unsupported methods both get the canonical
// 404 body.
func newRouter(db *sql.DB, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.Trace(log))

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.NotFoundHandler)

	endpointsHandler := api.NewEndpointsHandler(log)
	categoryHandler := api.NewCategoryHandler(postgres.NewCategoryStore(db, log), log)
	reviewHandler := api.NewReviewHandler(postgres.NewReviewStore(db, log), log)
	commentHandler := api.NewCommentHandler(postgres.NewCommentStore(db, log), log)
	userHandler := api.NewUserHandler(postgres.NewUserStore(db, log), log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", endpointsHandler.Get)

		r.Get("/categories", categoryHandler.List)
		r.Post("/categories", categoryHandler.Create)

		r.Get("/reviews", reviewHandler.List)
		r.Post("/reviews", reviewHandler.Create)
		r.Get("/reviews/{review_id}", reviewHandler.GetByID)
		r.Patch("/reviews/{review_id}", reviewHandler.UpdateVotes)
		r.Delete("/reviews/{review_id}", reviewHandler.Delete)

		r.Get("/reviews/{review_id}/comments", commentHandler.ListByReview)
		r.Post("/reviews/{review_id}/comments", commentHandler.Create)

		r.Patch("/comments/{comment_id}", commentHandler.UpdateVotes)
		r.Delete("/comments/{comment_id}", commentHandler.Delete)

		r.Get("/users", userHandler.List)
		r.Get("/users/{username}", userHandler.GetByUsername)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}
