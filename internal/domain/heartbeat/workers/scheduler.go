package workers

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	"github.com/Conte777/keepalive-service/internal/infrastructure/metrics"
)

type state int

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

// Scheduler fires tick every period. Each tick runs in its own goroutine,
// so a slow ping never delays the next one and ticks may overlap.
type Scheduler struct {
	period  time.Duration
	tick    deps.TickFunc
	metrics *metrics.Metrics
	logger  zerolog.Logger

	// mu guards state transitions; wg.Add happens under it so Stop never
	// waits on a run loop that has not been counted yet
	mu       sync.Mutex
	state    state
	done     chan struct{}
	wg       sync.WaitGroup
	inflight sync.WaitGroup
}

// NewScheduler creates an idle scheduler
func NewScheduler(period time.Duration, tick deps.TickFunc, m *metrics.Metrics, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		period:  period,
		tick:    tick,
		metrics: m,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start arms the ticker. Only an idle scheduler can be started.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateIdle {
		return
	}
	s.state = stateRunning

	s.logger.Debug().
		Dur("period", s.period).
		Msg("Starting heartbeat scheduler")

	s.metrics.SchedulerStarted()
	s.wg.Add(1)
	go s.run()
}

// Stop stops the ticker. It is safe to call any number of times, also
// concurrently with Start. Dispatches already in flight are not cancelled.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	prev := s.state
	s.state = stateStopped
	if prev == stateRunning {
		close(s.done)
	}
	s.mu.Unlock()

	if prev != stateRunning {
		return
	}

	s.wg.Wait()
	s.metrics.SchedulerStopped()

	s.logger.Debug().Msg("Heartbeat scheduler stopped")
}

// Running reports whether the ticker is armed
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateRunning
}

// Wait blocks until the run loop has exited and every dispatch it started
// has returned. Call it after Stop.
func (s *Scheduler) Wait() {
	s.wg.Wait()
	s.inflight.Wait()
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.inflight.Add(1)
			go s.dispatch()
		}
	}
}

// dispatch runs a single tick detached from the scheduler lifetime
func (s *Scheduler) dispatch() {
	defer s.inflight.Done()

	if err := s.tick(context.Background()); err != nil {
		s.logger.Error().Err(err).Msgf("❌ Ping error: %v", err)
	}
}
