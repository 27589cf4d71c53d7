// Package http contains the health endpoint of the keepalive service
package http

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	"github.com/Conte777/keepalive-service/pkg/httputil"
)

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents health status of a single component
type ComponentHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status     HealthStatus      `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentHealth `json:"components"`
}

// HealthHandler reports healthy while at least one scheduler is running
type HealthHandler struct {
	schedulers deps.SchedulerFactory
	logger     zerolog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(schedulers deps.SchedulerFactory, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		schedulers: schedulers,
		logger:     logger,
	}
}

// Handle handles the health check request for fasthttp
func (h *HealthHandler) Handle(ctx *fasthttp.RequestCtx) {
	running := h.schedulers.RunningCount()
	component := ComponentHealth{
		Name:    "schedulers",
		Healthy: running > 0,
		Message: fmt.Sprintf("%d running", running),
	}

	status := HealthStatusHealthy
	if !component.Healthy {
		status = HealthStatusUnhealthy
	}

	h.logger.Debug().
		Str("status", string(status)).
		Int("running_schedulers", running).
		Msg("Health check performed")

	httputil.WriteHealthResponse(ctx, HealthResponse{
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Components: []ComponentHealth{component},
	}, component.Healthy)
}
