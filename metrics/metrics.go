// Package metrics exposes editor activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
)

// Namespace prefixes every metric name.
const Namespace = "digraph"

// Collector owns a private registry with the editor and HTTP metrics.
// It implements editor.Observer.
type Collector struct {
	registry *prometheus.Registry

	operations   *prometheus.CounterVec
	nodes        prometheus.Gauge
	edges        prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector registers all metrics plus the Go and process collectors on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Graph store operations by outcome.",
		}, []string{"operation", "outcome"}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "nodes",
			Help:      "Nodes in the current graph snapshot.",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "edges",
			Help:      "Edges in the current graph snapshot.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.operations,
		c.nodes,
		c.edges,
		c.httpRequests,
		c.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// ObserveOperation implements editor.Observer.
func (c *Collector) ObserveOperation(op editor.Operation, outcome editor.Outcome, g core.Graph) {
	c.operations.WithLabelValues(string(op), string(outcome)).Inc()
	c.nodes.Set(float64(g.NodeCount()))
	c.edges.Set(float64(g.EdgeCount()))
}

// SetGraph initializes the gauges from a snapshot before any operation runs.
func (c *Collector) SetGraph(g core.Graph) {
	c.nodes.Set(float64(g.NodeCount()))
	c.edges.Set(float64(g.EdgeCount()))
}

// HTTPRequests exposes the request counter.
func (c *Collector) HTTPRequests() *prometheus.CounterVec { return c.httpRequests }

// Registry exposes the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Middleware counts requests by chi route pattern, so path parameters do not
// explode label cardinality.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
