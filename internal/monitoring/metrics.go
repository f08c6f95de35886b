package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusDenied  = "denied"

	QueueTypeWaiting = "waiting"
	QueueTypeAllowed = "allowed"
)

// Monitor owns the queue metrics. A nil *Monitor records nothing.
type Monitor struct {
	queueLength        *prometheus.GaugeVec
	queueOperations    *prometheus.CounterVec
	admittedUsers      *prometheus.CounterVec
	processingDuration prometheus.Histogram
	readRetries        prometheus.Counter
}

func NewMonitor(reg prometheus.Registerer) *Monitor {
	f := promauto.With(reg)

	return &Monitor{
		queueLength: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "docqueue_queue_length",
				Help: "Last observed queue length per queue",
			},
			[]string{"queue", "queue_type"},
		),
		queueOperations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docqueue_queue_operations_total",
				Help: "Total queue operations",
			},
			[]string{"operation", "queue", "status"},
		),
		admittedUsers: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docqueue_admitted_users_total",
				Help: "Users moved from the wait set to the allow set",
			},
			[]string{"queue"},
		),
		processingDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "docqueue_scheduler_tick_duration_seconds",
				Help:    "Duration of one scheduled pass over all queues",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
		),
		readRetries: f.NewCounter(
			prometheus.CounterOpts{
				Name: "docqueue_store_read_retries_total",
				Help: "Store reads retried after a failure",
			},
		),
	}
}

func (m *Monitor) TrackQueueOperation(operation, queue, status string) {
	if m == nil {
		return
	}
	m.queueOperations.WithLabelValues(operation, queue, status).Inc()
}

func (m *Monitor) SetQueueLength(queue, queueType string, n int64) {
	if m == nil {
		return
	}
	m.queueLength.WithLabelValues(queue, queueType).Set(float64(n))
}

func (m *Monitor) TrackAdmitted(queue string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.admittedUsers.WithLabelValues(queue).Add(float64(n))
}

func (m *Monitor) ObserveProcessing(d time.Duration) {
	if m == nil {
		return
	}
	m.processingDuration.Observe(d.Seconds())
}

func (m *Monitor) TrackReadRetry() {
	if m == nil {
		return
	}
	m.readRetries.Inc()
}
