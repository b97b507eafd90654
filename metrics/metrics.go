// Package metrics provides the prometheus instrumentation every
// production reverse proxy in the pack carries: counters for routed,
// unmatched, rule-rejected and upstream-failed requests, and a latency
// histogram for the full request pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the narrow interface the proxy and forwarding service
// depend on, so packages that don't need prometheus directly (tests,
// alternative service makers) can supply a no-op implementation.
type Recorder interface {
	RouteMatched()
	RouteNotFound()
	RuleRejected()
	BackendBadGateway()
	ObserveLatency(d time.Duration)
}

// Registry is the default, prometheus-backed Recorder. It registers its
// collectors with a caller-supplied prometheus.Registerer, so callers can
// mount them under any metrics endpoint they like, or leave them
// unregistered for tests.
type Registry struct {
	requestsTotal   *prometheus.CounterVec
	backendFailures prometheus.Counter
	latency         prometheus.Histogram
}

// NewRegistry builds a Registry and registers its collectors with reg.
// Passing nil skips registration (useful in tests that don't care about
// exposing /metrics).
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doorbell",
			Name:      "requests_total",
			Help:      "Total requests handled by the proxy, by outcome.",
		}, []string{"outcome"}),
		backendFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "doorbell",
			Name:      "backend_bad_gateway_total",
			Help:      "Total requests answered with a synthesized 502 due to a connect failure.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "doorbell",
			Name:      "request_duration_seconds",
			Help:      "End-to-end latency of the routing pipeline, from accept to response.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(r.requestsTotal, r.backendFailures, r.latency)
	}

	return r
}

func (r *Registry) RouteMatched()    { r.requestsTotal.WithLabelValues("matched").Inc() }
func (r *Registry) RouteNotFound()   { r.requestsTotal.WithLabelValues("not_found").Inc() }
func (r *Registry) RuleRejected()    { r.requestsTotal.WithLabelValues("rule_rejected").Inc() }
func (r *Registry) BackendBadGateway() {
	r.requestsTotal.WithLabelValues("bad_gateway").Inc()
	r.backendFailures.Inc()
}
func (r *Registry) ObserveLatency(d time.Duration) { r.latency.Observe(d.Seconds()) }

// Noop is a Recorder that discards everything; the zero value is ready
// to use and is the default when a caller doesn't supply a Registry.
type Noop struct{}

func (Noop) RouteMatched()                 {}
func (Noop) RouteNotFound()                {}
func (Noop) RuleRejected()                 {}
func (Noop) BackendBadGateway()            {}
func (Noop) ObserveLatency(time.Duration) {}
