package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/api/shared"
)

// NewRouter assembles the full HTTP surface: standard chi middleware, the
// trace middleware, public auth endpoints and session-protected endpoints.
func NewRouter(authHandler *AuthHandler, taskHandler *TaskHandler, authMiddleware *middleware.AuthMiddleware) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithData(w, r, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/user", authHandler.GetUser)
			r.Get("/tasks", taskHandler.GetBoard)
			r.Post("/tasks", taskHandler.CreateTask)
			r.Put("/tasks/{taskID}", taskHandler.ModifyTask)
			r.Delete("/tasks/{taskID}", taskHandler.DeleteTask)
		})
	})

	return r
}
