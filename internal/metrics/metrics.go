// Package metrics holds the Prometheus collectors of the back office.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered by New.
type Metrics struct {
	reg *prometheus.Registry

	AuthzDecisions      *prometheus.CounterVec   // action, decision
	CheckoutTransitions *prometheus.CounterVec   // transition, outcome
	FulfillmentFailures prometheus.Counter       // paid orders whose licenses were not provisioned
	LicensesProvisioned prometheus.Counter       // licenses created by fulfillment
	LicenseTransitions  *prometheus.CounterVec   // transition, outcome
	SessionsSwept       prometheus.Counter       // idle sessions dropped by the janitor
	RPCDuration         *prometheus.HistogramVec // method, code
	BuildInfo           *prometheus.GaugeVec     // version, commit
}

// New creates the collectors and registers them in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		AuthzDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carder_authz_decisions_total",
			Help: "Authorization decisions by action and outcome.",
		}, []string{"action", "decision"}),
		CheckoutTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carder_checkout_transitions_total",
			Help: "Checkout pipeline steps by outcome.",
		}, []string{"transition", "outcome"}),
		FulfillmentFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carder_fulfillment_failures_total",
			Help: "Fulfillments that failed after payment was confirmed.",
		}),
		LicensesProvisioned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carder_licenses_provisioned_total",
			Help: "Licenses created by fulfillment.",
		}),
		LicenseTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carder_license_transitions_total",
			Help: "License assign/unassign attempts by outcome.",
		}, []string{"transition", "outcome"}),
		SessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carder_sessions_swept_total",
			Help: "Idle sessions removed by the janitor.",
		}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carder_rpc_duration_seconds",
			Help:    "Unary RPC latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "code"}),
		BuildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "carder_build_info",
			Help: "Build information.",
		}, []string{"version", "commit"}),
	}
	m.reg.MustRegister(
		m.AuthzDecisions, m.CheckoutTransitions, m.FulfillmentFailures, m.LicensesProvisioned,
		m.LicenseTransitions, m.SessionsSwept, m.RPCDuration, m.BuildInfo,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// SetBuildInfo publishes build_info{version,commit} 1.
func (m *Metrics) SetBuildInfo(version, commit string) {
	m.BuildInfo.WithLabelValues(version, commit).Set(1)
}

// Outcome renders an error as a low-cardinality label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
