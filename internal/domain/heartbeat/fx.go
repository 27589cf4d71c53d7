// Package heartbeat contains the keepalive domain module
package heartbeat

import (
	"go.uber.org/fx"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/delivery/http"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/repository/http_clients/nodeapi"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/repository/telegram"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/usecase/business"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/workers"
	"github.com/Conte777/keepalive-service/internal/infrastructure/http/server"
	"github.com/Conte777/keepalive-service/internal/infrastructure/interrupt"
)

// Module provides heartbeat domain components for fx dependency injection
var Module = fx.Module("heartbeat",
	// Repository
	fx.Provide(
		nodeapi.NewSessionClient,
		nodeapi.NewPingClient,
		telegram.NewNotifier,
	),

	// UseCase
	fx.Provide(
		provideTeardowns,
		business.NewUseCase,
	),

	// Delivery
	fx.Provide(
		http.NewHealthHandler,
		http.NewRouter,
	),
	fx.Invoke(registerRoutes),

	// Workers
	workers.Module,
)

// provideTeardowns exposes the interrupt guard to the use case
func provideTeardowns(guard *interrupt.Guard) deps.TeardownRegistry {
	return guard
}

// registerRoutes registers heartbeat HTTP routes on the server
func registerRoutes(srv *server.Server, router *http.Router) {
	router.RegisterRoutes(srv.Router)
}
