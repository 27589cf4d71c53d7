// Package deps contains interface definitions for the heartbeat domain dependencies
package deps

import (
	"context"
	"time"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/entities"
)

// SessionClient authenticates an account token against the session endpoint
type SessionClient interface {
	// Authenticate returns the account identity or heartbeat errors.ErrSession
	Authenticate(ctx context.Context, token, userAgent string, proxy *entities.ProxyRecord) (*entities.AccountSession, error)
}

// PingClient delivers a single ping payload to the ping endpoint
type PingClient interface {
	// Ping returns nil on a 2xx response or heartbeat errors.ErrPing
	Ping(ctx context.Context, token, userAgent string, proxy *entities.ProxyRecord, payload *entities.PingPayload) error
}

// Notifier is a best-effort status channel. Report never fails the caller.
type Notifier interface {
	Report(ctx context.Context, text string)
}

// Scheduler runs pings for one session on a fixed period
type Scheduler interface {
	// Stop stops re-arming the ticker; in-flight ticks run to completion
	Stop()
	Running() bool
}

// TickFunc is one heartbeat dispatch
type TickFunc func(ctx context.Context) error

// SchedulerFactory starts schedulers and keeps track of them
type SchedulerFactory interface {
	Start(name string, period time.Duration, tick TickFunc) Scheduler
	// RunningCount returns the number of schedulers not yet stopped
	RunningCount() int
}

// TeardownRegistry runs registered teardown functions on process interrupt
type TeardownRegistry interface {
	Register(teardown func())
}
