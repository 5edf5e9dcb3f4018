package httpserver

import (
	"net/http"
	"time"

	"gym-membership-go/internal/config"
	"gym-membership-go/internal/transport/httpserver/handler"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const defaultRequestTimeout = 30 * time.Second

// NewRouter mounts the API under /api. metrics may be nil, in which case
// /metrics is not served.
func NewRouter(cfg config.Config, handlers *handler.Handlers, metrics http.Handler) http.Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Get("/plans", handlers.Memberships.ListPlans)

		r.Route("/members", func(r chi.Router) {
			r.Post("/", handlers.Members.CreateMember)
			r.Get("/", handlers.Members.ListMembers)
			r.Get("/{id}", handlers.Members.GetMember)
		})

		r.Route("/memberships", func(r chi.Router) {
			r.Get("/plans", handlers.Memberships.ListPlans)
			r.Post("/", handlers.Memberships.AssignPlan)
			r.Patch("/{id}/cancel", handlers.Memberships.CancelMembership)
		})

		r.Post("/check-ins", handlers.CheckIns.CheckIn)
	})

	return r
}
