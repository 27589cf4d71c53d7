// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/Conte777/keepalive-service/config"
	"github.com/Conte777/keepalive-service/internal/domain"
	"github.com/Conte777/keepalive-service/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, metrics, http clients, telegram bot, http server)
		infrastructure.Module,

		// Domain (keepalive business logic)
		domain.Module,
	)
}
