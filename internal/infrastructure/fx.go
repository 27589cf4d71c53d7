// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/Conte777/keepalive-service/internal/infrastructure/http"
	"github.com/Conte777/keepalive-service/internal/infrastructure/httpclient"
	"github.com/Conte777/keepalive-service/internal/infrastructure/interrupt"
	"github.com/Conte777/keepalive-service/internal/infrastructure/logger"
	"github.com/Conte777/keepalive-service/internal/infrastructure/metrics"
	"github.com/Conte777/keepalive-service/internal/infrastructure/telegram"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	httpclient.Module,
	interrupt.Module,
	telegram.Module,
	http.Module,
)
