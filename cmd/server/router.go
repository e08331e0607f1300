package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eventboard/eventboard-api/internal/api"
	apiMiddleware "github.com/eventboard/eventboard-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. Listing and single-item reads are public; everything that
// writes, plus the self-profile reads and the image proxy, sits behind
// the authentication gate.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userStore, app.tokenService, app.passwordHasher, app.logger)
	eventHandler := api.NewEventHandler(app.eventStore, app.userStore, app.logger)
	imageHandler := api.NewImageHandler(app.imageService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Public routes
	r.Get("/users", userHandler.List)
	r.Post("/users/register", userHandler.Register)
	r.Post("/users/login", userHandler.Login)
	r.Get("/events", eventHandler.List)

	// Gated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users/me", userHandler.Me)
		r.Put("/users/me", userHandler.UpdateMe)

		r.Get("/events/mine", eventHandler.Mine)
		r.Post("/events", eventHandler.Create)
		r.Put("/events/{id}", eventHandler.Update)
		r.Delete("/events/{id}", eventHandler.Delete)

		r.Post("/api/uploadImage", imageHandler.Upload)
		r.Post("/api/deleteImage", imageHandler.Delete)
	})

	// Public single-event read. chi matches the literal /events/mine
	// route ahead of the id parameter.
	r.Get("/events/{id}", eventHandler.Get)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
