package monitoring

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMonitor(reg)

	m.TrackQueueOperation("register", "default", StatusSuccess)
	m.TrackQueueOperation("register", "default", StatusSuccess)
	m.TrackQueueOperation("register", "default", StatusDenied)
	m.TrackAdmitted("default", 3)
	m.TrackAdmitted("default", 0)
	m.SetQueueLength("default", QueueTypeWaiting, 7)
	m.TrackReadRetry()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.queueOperations.WithLabelValues("register", "default", StatusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.queueOperations.WithLabelValues("register", "default", StatusDenied)))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.admittedUsers.WithLabelValues("default")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.queueLength.WithLabelValues("default", QueueTypeWaiting)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.readRetries))
}

func TestMonitor_Histogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMonitor(reg)

	m.ObserveProcessing(20 * time.Millisecond)

	expected := `
# HELP docqueue_store_read_retries_total Store reads retried after a failure
# TYPE docqueue_store_read_retries_total counter
docqueue_store_read_retries_total 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "docqueue_store_read_retries_total"))

	count, err := testutil.GatherAndCount(reg, "docqueue_scheduler_tick_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMonitor_NilIsNoop(t *testing.T) {
	var m *Monitor

	assert.NotPanics(t, func() {
		m.TrackQueueOperation("register", "q", StatusError)
		m.SetQueueLength("q", QueueTypeAllowed, 1)
		m.TrackAdmitted("q", 1)
		m.ObserveProcessing(time.Second)
		m.TrackReadRetry()
	})
}
