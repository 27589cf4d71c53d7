package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordPing(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordPing(true, 0.2)
	m.RecordPing(true, 0.3)
	m.RecordPing(false, 1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PingsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PingsTotal.WithLabelValues(ResultFailure)))
}

func TestMetrics_RecordSession(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordSession(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsTotal.WithLabelValues(ResultFailure)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SessionsTotal.WithLabelValues(ResultSuccess)))
}

func TestMetrics_Schedulers(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.SchedulerStarted()
	m.SchedulerStarted()
	m.SchedulerStopped()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunningSchedulers))
}

func TestMetrics_RecordNotification(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordNotification(ResultDropped)
	m.RecordNotification("")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(ResultDropped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("unknown")))
}

func TestGetDefaultMetrics_Singleton(t *testing.T) {
	assert.Same(t, GetDefaultMetrics(), GetDefaultMetrics())
	assert.NotNil(t, DefaultMetrics)
}
