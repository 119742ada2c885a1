package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Rate acquisitions by base currency and outcome (live/fallback)
	RateAcquisitionsTotal  *prometheus.CounterVec
	RateAcquisitionSeconds *prometheus.HistogramVec

	// Conversions by source currency; degraded counts zero results caused by a missing INR rate
	ConversionsTotal         *prometheus.CounterVec
	DegradedConversionsTotal *prometheus.CounterVec

	// Suggestions returned per ranking call
	SuggestionsReturned prometheus.Histogram

	// Session results dropped because a newer input superseded them
	StaleResultsDiscardedTotal prometheus.Counter
	ActiveSessions             prometheus.Gauge

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RateAcquisitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shefra_rate_acquisitions_total",
				Help: "Number of rate acquisitions by base currency and status",
			},
			[]string{"base", "status"},
		),
		RateAcquisitionSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shefra_rate_acquisition_duration_seconds",
				Help:    "Time spent acquiring a rate table, including fallback",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"status"},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shefra_conversions_total",
				Help: "Number of conversions into Shefras by source currency",
			},
			[]string{"currency"},
		),
		DegradedConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shefra_degraded_conversions_total",
				Help: "Conversions that produced zero because the INR rate was missing",
			},
			[]string{"currency"},
		),
		SuggestionsReturned: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shefra_suggestions_returned",
				Help:    "Number of catalog items returned per ranking",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
		),
		StaleResultsDiscardedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "shefra_session_stale_results_discarded_total",
				Help: "Session cycle results discarded because a newer cycle started",
			},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "shefra_sessions_active",
				Help: "Number of open live sessions",
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shefra_http_requests_total",
				Help: "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shefra_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRateAcquisition records one acquisition.
func (m *Metrics) ObserveRateAcquisition(base, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RateAcquisitionsTotal.WithLabelValues(base, status).Inc()
	m.RateAcquisitionSeconds.WithLabelValues(status).Observe(d.Seconds())
}

// ObserveConversion records one conversion.
func (m *Metrics) ObserveConversion(currency string, degraded bool) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(currency).Inc()
	if degraded {
		m.DegradedConversionsTotal.WithLabelValues(currency).Inc()
	}
}

// ObserveSuggestions records the size of one ranking result.
func (m *Metrics) ObserveSuggestions(n int) {
	if m == nil {
		return
	}
	m.SuggestionsReturned.Observe(float64(n))
}

// IncStaleDiscarded counts a superseded session result.
func (m *Metrics) IncStaleDiscarded() {
	if m == nil {
		return
	}
	m.StaleResultsDiscardedTotal.Inc()
}

// SessionOpened and SessionClosed track live sessions.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
