package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.IncrementCounter("summary_request", map[string]string{"kind": "totals", "status": "success"})
	m.IncrementCounter("summary_request", map[string]string{"status": "success"})
	m.IncrementCounter("summary_request", map[string]string{"kind": "categories", "status": "success"})
	m.IncrementCounter("summary_request", nil)
	m.IncrementCounter("ledger_entry", map[string]string{"source": "donation", "type": "income"})
	m.IncrementCounter("schedule_conflict", nil)
	m.IncrementCounter("application_reviewed", map[string]string{"decision": "approve"})
	m.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})
	m.IncrementCounter("not_a_metric", nil)
	m.RecordGauge("upcoming_pujas", 4, nil)
	m.RecordGauge("donation_amount", 101, nil)
	m.RecordProcessingTime("summary", 12*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.summaryRequests.WithLabelValues("totals", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.summaryRequests.WithLabelValues("categories", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerEntriesTotal.WithLabelValues("donation", "income")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scheduleConflictsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.applicationsReviewedTotal.WithLabelValues("approve")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authenticationEventsTotal.WithLabelValues("login_success")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.upcomingPujas))

	count, err := testutil.GatherAndCount(reg, "donation_amount", "financial_summary_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
