package api

import (
	"net/http"
	"scenic-seat-service/internal/api/handlers"
	"scenic-seat-service/internal/platform/metrics"
	"scenic-seat-service/internal/ports"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Cities    ports.CityRepository
	Ephemeris ports.SolarEphemeris
	Metrics   *metrics.Metrics

	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(d.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	cityHandler := &handlers.CityHandler{Repo: d.Cities}
	recommendHandler := &handlers.RecommendHandler{
		Cities:    d.Cities,
		Ephemeris: d.Ephemeris,
		Metrics:   d.Metrics,
	}
	reportHandler := &handlers.ReportHandler{}

	r.Get("/", handlers.Root)
	r.Get("/healthz", handlers.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if d.RateLimitRequests > 0 && d.RateLimitWindow > 0 {
			r.Use(httprate.Limit(
				d.RateLimitRequests,
				d.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					handlers.WriteError(w, r, http.StatusTooManyRequests, handlers.CodeRateLimited, "too many requests")
				}),
			))
		}

		r.Get("/cities", cityHandler.List)
		r.Post("/recommend", recommendHandler.Recommend)
		r.Post("/export-pdf", reportHandler.ExportPDF)
	})

	return r
}
