package api

import (
	"net/http"

	"github.com/Gav1n0112/keya/internal/api/handlers"
	"github.com/Gav1n0112/keya/internal/api/middleware"
	"github.com/Gav1n0112/keya/internal/config"
	"github.com/Gav1n0112/keya/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	softwareHandler := handlers.NewSoftwareHandler(services.Software)
	keysHandler := handlers.NewKeysHandler(services.Key)
	verifyHandler := handlers.NewVerifyHandler(services.Key)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", authHandler.Login)
		r.Post("/verify-key", verifyHandler.Verify)

		// Protected admin routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Post("/change-password", authHandler.ChangePassword)

			r.Route("/software", func(r chi.Router) {
				r.Get("/", softwareHandler.List)
				r.Post("/", softwareHandler.Create)
				r.Put("/{id}", softwareHandler.Update)
				r.Delete("/{id}", softwareHandler.Delete)
			})

			r.Route("/keys", func(r chi.Router) {
				r.Get("/", keysHandler.List)
				r.Post("/", keysHandler.Generate)
				r.Delete("/{id}", keysHandler.Delete)
			})
		})
	})

	return r
}
