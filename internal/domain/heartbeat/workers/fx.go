// Package workers contains the heartbeat schedulers and the keepalive worker
package workers

import (
	"context"

	"go.uber.org/fx"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
)

// Module provides heartbeat workers for fx DI
var Module = fx.Module("heartbeat-workers",
	fx.Provide(
		NewFactory,
		func(f *Factory) deps.SchedulerFactory { return f },
		NewKeepaliveWorker,
	),
	fx.Invoke(registerLifecycle),
)

// registerLifecycle registers keepalive worker with fx.Lifecycle
func registerLifecycle(lc fx.Lifecycle, w *KeepaliveWorker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return w.Start()
		},
		OnStop: func(ctx context.Context) error {
			w.Stop()
			return nil
		},
	})
}
