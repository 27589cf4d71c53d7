package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultDropped = "dropped"
)

// Metrics holds all Prometheus metrics for the keepalive service
type Metrics struct {
	// Session metrics
	SessionsTotal *prometheus.CounterVec

	// Ping metrics
	PingsTotal   *prometheus.CounterVec
	PingDuration prometheus.Histogram

	// Scheduler metrics
	RunningSchedulers prometheus.Gauge

	// Notifier metrics
	NotificationsTotal *prometheus.CounterVec
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return DefaultMetrics
}

// NewMetrics creates a new Metrics instance registered on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keepalive_sessions_total",
				Help: "Total number of session requests by result",
			},
			[]string{"result"},
		),

		PingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keepalive_pings_total",
				Help: "Total number of ping requests by result",
			},
			[]string{"result"},
		),
		PingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "keepalive_ping_duration_seconds",
			Help:    "Duration of ping requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		RunningSchedulers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "keepalive_running_schedulers",
			Help: "Current number of running heartbeat schedulers",
		}),

		NotificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keepalive_notifications_total",
				Help: "Total number of notifier reports by result",
			},
			[]string{"result"},
		),
	}
}

// RecordSession records a session request outcome
func (m *Metrics) RecordSession(ok bool) {
	m.SessionsTotal.WithLabelValues(result(ok)).Inc()
}

// RecordPing records a ping request outcome with its duration
func (m *Metrics) RecordPing(ok bool, duration float64) {
	m.PingsTotal.WithLabelValues(result(ok)).Inc()
	m.PingDuration.Observe(duration)
}

// SchedulerStarted increments the running schedulers gauge
func (m *Metrics) SchedulerStarted() {
	m.RunningSchedulers.Inc()
}

// SchedulerStopped decrements the running schedulers gauge
func (m *Metrics) SchedulerStopped() {
	m.RunningSchedulers.Dec()
}

// RecordNotification records a notifier outcome (success, failure or dropped)
func (m *Metrics) RecordNotification(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	m.NotificationsTotal.WithLabelValues(outcome).Inc()
}

func result(ok bool) string {
	if ok {
		return ResultSuccess
	}
	return ResultFailure
}
