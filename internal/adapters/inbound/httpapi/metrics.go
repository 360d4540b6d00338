package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	renders    *prometheus.CounterVec
	transforms *prometheus.CounterVec
}

// newMetrics registers the API counters on a private registry so several
// routers can coexist in one process.
func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transformspec_http_requests_total",
			Help: "Total number of API requests",
		}, []string{"method", "route", "status"}),
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transformspec_renders_total",
			Help: "Total number of rendered reports",
		}, []string{"kind", "format"}),
		transforms: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transformspec_transforms_total",
			Help: "Total number of code-generation runs by outcome",
		}, []string{"outcome"}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
