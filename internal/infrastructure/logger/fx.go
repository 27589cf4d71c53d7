// Package logger contains logger infrastructure
package logger

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/keepalive-service/config"
)

// Module provides logger for fx dependency injection
var Module = fx.Module("logger",
	fx.Provide(provideLogger),
)

// provideLogger creates logger from config and closes the log file on stop
func provideLogger(lc fx.Lifecycle, cfg *config.LoggingConfig) (zerolog.Logger, error) {
	log, closer, err := NewWithFile(cfg.Level, cfg.File)
	if err != nil {
		return zerolog.Logger{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closer.Close()
		},
	})

	return log, nil
}
