// Package interrupt attaches a single process-wide SIGINT handler shared by
// every running scheduler.
package interrupt

import (
	"os"
	"os/signal"
	"sync"

	"github.com/rs/zerolog"
)

// NotifyFunc subscribes c to the given signals (signal.Notify in production)
type NotifyFunc func(c chan<- os.Signal, sig ...os.Signal)

// Guard collects teardown functions and runs them all, once, per interrupt.
// The handler is attached on the first Register call only.
type Guard struct {
	notify NotifyFunc
	logger zerolog.Logger

	attach    sync.Once
	mu        sync.Mutex
	teardowns []func()
}

var (
	processGuard *Guard
	processOnce  sync.Once
)

// Process returns the process-wide guard. The logger of the first caller wins.
func Process(logger zerolog.Logger) *Guard {
	processOnce.Do(func() {
		processGuard = New(signal.Notify, logger)
	})
	return processGuard
}

// New creates a guard using notify to subscribe to signals
func New(notify NotifyFunc, logger zerolog.Logger) *Guard {
	return &Guard{
		notify: notify,
		logger: logger,
	}
}

// Register adds a teardown function and attaches the interrupt handler if
// this is the first registration.
func (g *Guard) Register(teardown func()) {
	g.mu.Lock()
	g.teardowns = append(g.teardowns, teardown)
	g.mu.Unlock()

	g.attach.Do(func() {
		signals := make(chan os.Signal, 1)
		g.notify(signals, os.Interrupt)
		go g.listen(signals)
	})
}

func (g *Guard) listen(signals <-chan os.Signal) {
	for range signals {
		g.Teardown()
	}
}

// Teardown runs and clears every registered teardown function
func (g *Guard) Teardown() {
	g.mu.Lock()
	teardowns := g.teardowns
	g.teardowns = nil
	g.mu.Unlock()

	g.logger.Info().Int("schedulers", len(teardowns)).Msg("👋 Shutting down...")

	for _, fn := range teardowns {
		fn()
	}
}
