package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"simpeg/internal/domain/audit"
	"simpeg/internal/domain/auth"
	"simpeg/internal/domain/employee"
	"simpeg/internal/domain/profile"
	"simpeg/internal/platform/config"
	"simpeg/internal/transport/http/middleware"

	audithandler "simpeg/internal/transport/http/handlers/audit"
	authhandler "simpeg/internal/transport/http/handlers/auth"
	backuphandler "simpeg/internal/transport/http/handlers/backup"
	employeehandler "simpeg/internal/transport/http/handlers/employees"
	reportshandler "simpeg/internal/transport/http/handlers/reports"
	usershandler "simpeg/internal/transport/http/handlers/users"
)

// New assembles the full HTTP surface over an already connected pool and a
// bootstrapped account registry.
func New(cfg config.Config, pool *pgxpool.Pool, registry *auth.Registry) http.Handler {
	store := employee.NewStore(pool)
	auditLog := audit.New(pool)
	photos := profile.NewPhotoStore(cfg.PhotoDir)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authH := authhandler.NewHandler(registry, auditLog, cfg.JWTSecret, cfg.TokenTTL)
		r.Post("/auth/login", authH.HandleLogin)
		r.Post("/auth/logout", authH.HandleLogout)

		employeehandler.NewHandler(store, auditLog, photos, cfg.MaxUploadBytes).RegisterRoutes(r)
		usershandler.NewHandler(registry, auditLog).RegisterRoutes(r)
		reportshandler.NewHandler(store, registry, auditLog).RegisterRoutes(r)
		audithandler.NewHandler(auditLog).RegisterRoutes(r)
		backuphandler.NewHandler(store, auditLog).RegisterRoutes(r)
	})

	return router
}
