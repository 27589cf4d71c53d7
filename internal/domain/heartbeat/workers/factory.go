package workers

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	"github.com/Conte777/keepalive-service/internal/infrastructure/metrics"
)

// Factory starts schedulers and remembers them for health checks and shutdown
type Factory struct {
	metrics *metrics.Metrics
	logger  zerolog.Logger

	mu         sync.Mutex
	schedulers []*Scheduler
}

// NewFactory creates a scheduler factory
func NewFactory(m *metrics.Metrics, logger zerolog.Logger) *Factory {
	return &Factory{
		metrics: m,
		logger:  logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start creates and starts a scheduler firing tick every period
func (f *Factory) Start(name string, period time.Duration, tick deps.TickFunc) deps.Scheduler {
	s := NewScheduler(period, tick, f.metrics, f.logger.With().Str("account", name).Logger())

	f.mu.Lock()
	f.schedulers = append(f.schedulers, s)
	f.mu.Unlock()

	s.Start()
	return s
}

// RunningCount returns the number of schedulers whose ticker is armed
func (f *Factory) RunningCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	running := 0
	for _, s := range f.schedulers {
		if s.Running() {
			running++
		}
	}
	return running
}

// StopAll stops every scheduler started by the factory, then waits for
// their in-flight dispatches to return
func (f *Factory) StopAll() {
	f.mu.Lock()
	schedulers := append([]*Scheduler(nil), f.schedulers...)
	f.mu.Unlock()

	for _, s := range schedulers {
		s.Stop()
	}
	for _, s := range schedulers {
		s.Wait()
	}
}
