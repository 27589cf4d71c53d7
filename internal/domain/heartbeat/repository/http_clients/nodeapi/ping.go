package nodeapi

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Conte777/keepalive-service/config"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/entities"
	heartbeaterrors "github.com/Conte777/keepalive-service/internal/domain/heartbeat/errors"
	"github.com/Conte777/keepalive-service/internal/infrastructure/httpclient"
)

// PingClient posts ping payloads to the ping endpoint
type PingClient struct {
	transport
	url    string
	logger zerolog.Logger
}

// NewPingClient creates a ping client for cfg.PingURL
func NewPingClient(cfg *config.HeartbeatConfig, clients *httpclient.Factory, logger zerolog.Logger) deps.PingClient {
	logger.Info().
		Str("ping_url", cfg.PingURL).
		Msg("Ping client initialized")

	return &PingClient{
		transport: transport{clients: clients},
		url:       cfg.PingURL,
		logger:    logger,
	}
}

// Ping sends payload; the response body is not inspected
func (c *PingClient) Ping(ctx context.Context, token, userAgent string, proxy *entities.ProxyRecord, payload *entities.PingPayload) error {
	if _, err := c.post(ctx, c.url, token, userAgent, proxy, payload); err != nil {
		c.logger.Debug().Err(err).Str("proxy", proxy.Addr()).Msg("Ping request failed")
		return heartbeaterrors.ErrPing
	}
	return nil
}
