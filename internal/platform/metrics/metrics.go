// Package metrics holds the Prometheus collectors exported by the web service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio_space"

// Registry owns the web service collectors. Each Registry wraps its own
// prometheus.Registry so tests can build isolated instances.
type Registry struct {
	reg *prometheus.Registry

	gateDecisions      *prometheus.CounterVec
	resolutionFailures *prometheus.CounterVec
	loginAttempts      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

// New registers a fresh set of collectors.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		gateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "decisions_total",
			Help:      "Session gate decisions by outcome.",
		}, []string{"outcome"}),
		resolutionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "resolution_failures_total",
			Help:      "Session resolutions that failed and were treated as anonymous.",
		}, []string{"reason"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Login form submissions by result.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
	r.reg.MustRegister(
		r.gateDecisions,
		r.resolutionFailures,
		r.loginAttempts,
		r.requestDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return r
}

// Gatherer exposes the underlying registry for tests and handlers.
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Gatherer(), promhttp.HandlerOpts{})
}

// ObserveGateDecision counts one gate outcome.
func (r *Registry) ObserveGateDecision(outcome string) {
	if r == nil {
		return
	}
	r.gateDecisions.WithLabelValues(outcome).Inc()
}

// ObserveResolutionFailure counts one failed session resolution.
func (r *Registry) ObserveResolutionFailure(reason string) {
	if r == nil {
		return
	}
	r.resolutionFailures.WithLabelValues(reason).Inc()
}

// ObserveLogin counts one login attempt.
func (r *Registry) ObserveLogin(result string) {
	if r == nil {
		return
	}
	r.loginAttempts.WithLabelValues(result).Inc()
}

// ObserveRequest records one completed request.
func (r *Registry) ObserveRequest(method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
