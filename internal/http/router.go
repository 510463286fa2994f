package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires pages, the JSON API and middleware.
// The knowledge ingest route exists only when the handler has a knowledge base.
func NewRouter(h *Handler, p *Pages, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", p.Page("index.html", "Sigma AI"))
	r.Get("/about", p.Page("about.html", "About"))
	r.Get("/signup", p.Page("signup.html", "Sign up"))
	r.Get("/model", p.Page("model.html", "Ask Sigma"))
	r.Get("/logout", p.LogoutHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", p.StaticHandler()))

	r.Get("/health", HealthHandler)
	r.Post("/get_answer", h.GetAnswerHandler)
	if h.kb != nil {
		r.Post("/knowledge", h.IngestHandler)
	}

	return r
}

// requestLogger logs one line per request with slog
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			slog.Info("Request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
