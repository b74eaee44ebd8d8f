package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	summaryRequests           *prometheus.CounterVec
	summaryDuration           prometheus.Histogram
	ledgerEntriesTotal        *prometheus.CounterVec
	donationAmount            prometheus.Histogram
	scheduleConflictsTotal    prometheus.Counter
	applicationsReviewedTotal *prometheus.CounterVec
	auditEventsTotal          *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
	exportDuration            prometheus.Histogram
	upcomingPujas             prometheus.Gauge
}

// NewPrometheusMetrics registers the service metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		summaryRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "financial_summary_requests_total",
				Help: "Total number of financial summary computations by kind (totals, categories)",
			},
			[]string{"kind", "status"},
		),
		summaryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "financial_summary_duration_milliseconds",
				Help:    "Financial summary read and reduce duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		ledgerEntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_total",
				Help: "Total number of ledger transactions written",
			},
			[]string{"source", "type"},
		),
		donationAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "donation_amount",
				Help:    "Donation amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		scheduleConflictsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "puja_schedule_conflicts_total",
				Help: "Total number of puja schedules rejected for overlapping",
			},
		),
		applicationsReviewedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "applications_reviewed_total",
				Help: "Total number of membership applications reviewed",
			},
			[]string{"decision"},
		),
		auditEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_events_total",
				Help: "Total number of audit log entries recorded",
			},
			[]string{"action", "resource"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		exportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "donation_export_duration_seconds",
				Help:    "Donation spreadsheet export duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		upcomingPujas: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "upcoming_pujas",
				Help: "Number of scheduled pujas returned by the last upcoming query",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "summary_request":
		kind := tags["kind"]
		if kind == "" {
			kind = "totals"
		}
		if status != "" {
			m.summaryRequests.WithLabelValues(kind, status).Inc()
		}
	case "ledger_entry":
		m.ledgerEntriesTotal.WithLabelValues(tags["source"], tags["type"]).Inc()
	case "schedule_conflict":
		m.scheduleConflictsTotal.Inc()
	case "application_reviewed":
		if decision := tags["decision"]; decision != "" {
			m.applicationsReviewedTotal.WithLabelValues(decision).Inc()
		}
	case "audit_event":
		m.auditEventsTotal.WithLabelValues(tags["action"], tags["resource"]).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "summary":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	case "donation_export":
		m.exportDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "donation_amount":
		m.donationAmount.Observe(value)
	case "upcoming_pujas":
		m.upcomingPujas.Set(value)
	}
}
