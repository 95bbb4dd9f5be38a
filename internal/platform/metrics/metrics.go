package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	Recommendations     *prometheus.CounterVec
	MidpointFallbacks   prometheus.Counter
	RecommendationFails *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenic_seat_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scenic_seat_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenic_seat_recommendations_total",
			Help: "Seat recommendations served by side and stability.",
		}, []string{"side", "stability"}),
		MidpointFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scenic_seat_midpoint_sun_fallbacks_total",
			Help: "Recommendations that reused the departure sun azimuth at the route midpoint.",
		}),
		RecommendationFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenic_seat_recommendation_errors_total",
			Help: "Failed recommendation requests by error code.",
		}, []string{"code"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.Recommendations,
		m.MidpointFallbacks,
		m.RecommendationFails,
	)

	return m
}

// ObserveRecommendation counts a served recommendation.
func (m *Metrics) ObserveRecommendation(side, stability string, fallback bool) {
	m.Recommendations.WithLabelValues(side, stability).Inc()
	if fallback {
		m.MidpointFallbacks.Inc()
	}
}
