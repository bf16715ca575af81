package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry instead of the global default one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	xpGrantedTotal    prometheus.Counter
	levelUpsTotal     prometheus.Counter
	achievementsTotal *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mindwell_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mindwell_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		xpGrantedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "mindwell_xp_granted_total",
				Help: "Experience points awarded across all users",
			},
		),
		levelUpsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "mindwell_level_ups_total",
				Help: "Levels gained across all users",
			},
		),
		achievementsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mindwell_achievements_unlocked_total",
				Help: "Achievement unlocks by achievement name",
			},
			[]string{"achievement"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) XPGranted(xp int) {
	m.xpGrantedTotal.Add(float64(xp))
}

func (m *Metrics) LevelsGained(n int) {
	m.levelUpsTotal.Add(float64(n))
}

func (m *Metrics) AchievementUnlocked(name string) {
	m.achievementsTotal.WithLabelValues(name).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
