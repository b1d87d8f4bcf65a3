package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapi/internal/config"
	handlers "blogapi/internal/handler"
	"blogapi/internal/middleware"
)

// NewRouter registers every API route and wraps the mux with the
// middleware stack. ctx bounds the rate limiter's cleanup goroutine.
func NewRouter(ctx context.Context, h *handlers.Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.NotFound)
	r.Use(middleware.Metrics)

	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", h.Stats).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", h.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/api/posts/{id}", h.DeletePost).Methods(http.MethodDelete)

	if cfg.Auth.JWTSecretKey != "" {
		r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	}

	if h.MediaService != nil {
		r.HandleFunc("/api/media", h.UploadMedia).Methods(http.MethodPost)
		r.HandleFunc("/api/media/{object:.+}", h.DeleteMedia).Methods(http.MethodDelete)
	}

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	return middleware.Chain(r,
		middleware.AuthGuard(cfg.Auth.Required, h.AuthService),
		limiter.Middleware("/api/"),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.SecurityHeaders,
		middleware.Logging(logger),
		middleware.Recover,
	)
}
