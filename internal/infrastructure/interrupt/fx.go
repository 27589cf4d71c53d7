package interrupt

import (
	"go.uber.org/fx"
)

// Module provides the process-wide interrupt guard for fx DI
var Module = fx.Module("interrupt",
	fx.Provide(Process),
)
