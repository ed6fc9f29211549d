// Package metrics exposes Prometheus counters for the security-sensitive
// paths: failed logins, rejected file paths and cascade outcomes.
package metrics

import (
	"net/http"

	"praxis/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process-wide collectors. A nil *Metrics is a valid
// no-op receiver, so call sites need no enabled-check.
type Metrics struct {
	registry *prometheus.Registry

	authFailures   prometheus.Counter
	pathRejections prometheus.Counter
	cascades       *prometheus.CounterVec
}

// NewFromConfig returns nil when metrics are disabled; every method on the
// nil receiver is a no-op.
func NewFromConfig(cfg *config.Config) *Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}

	return New()
}

// New registers the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "praxis",
			Name:      "auth_failures_total",
			Help:      "Login attempts rejected with invalid credentials.",
		}),
		pathRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "praxis",
			Name:      "document_path_rejections_total",
			Help:      "Document paths rejected by the storage boundary.",
		}),
		cascades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "praxis",
			Name:      "client_cascades_total",
			Help:      "Client cascade deletions by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(m.authFailures, m.pathRejections, m.cascades)

	return m
}

// AuthFailure counts one rejected login attempt.
func (m *Metrics) AuthFailure() {
	if m == nil {
		return
	}
	m.authFailures.Inc()
}

// PathRejection counts one stored path rejected by the storage boundary.
func (m *Metrics) PathRejection() {
	if m == nil {
		return
	}
	m.pathRejections.Inc()
}

// CascadeCommitted counts one successful client cascade.
func (m *Metrics) CascadeCommitted() {
	if m == nil {
		return
	}
	m.cascades.WithLabelValues("committed").Inc()
}

// CascadeRolledBack counts one client cascade that aborted and rolled back.
func (m *Metrics) CascadeRolledBack() {
	if m == nil {
		return
	}
	m.cascades.WithLabelValues("rolled_back").Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
