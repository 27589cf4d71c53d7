// Package business contains the keepalive business logic
package business

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Conte777/keepalive-service/config"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/entities"
	heartbeaterrors "github.com/Conte777/keepalive-service/internal/domain/heartbeat/errors"
	"github.com/Conte777/keepalive-service/internal/infrastructure/metrics"
)

// UseCase connects accounts and dispatches their pings
type UseCase struct {
	cfg        *config.HeartbeatConfig
	sessions   deps.SessionClient
	pings      deps.PingClient
	notifier   deps.Notifier
	schedulers deps.SchedulerFactory
	teardowns  deps.TeardownRegistry
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewUseCase creates a new UseCase instance
func NewUseCase(
	cfg *config.HeartbeatConfig,
	sessions deps.SessionClient,
	pings deps.PingClient,
	notifier deps.Notifier,
	schedulers deps.SchedulerFactory,
	teardowns deps.TeardownRegistry,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		cfg:        cfg,
		sessions:   sessions,
		pings:      pings,
		notifier:   notifier,
		schedulers: schedulers,
		teardowns:  teardowns,
		metrics:    m,
		logger:     logger,
	}
}

// Connect authenticates account, reports it and starts its heartbeat.
// On authentication failure it returns ErrSession and starts nothing.
func (uc *UseCase) Connect(ctx context.Context, account entities.Account) (deps.Scheduler, error) {
	logger := uc.logger.With().Str("run_id", uuid.NewString()).Logger()

	session, err := uc.sessions.Authenticate(ctx, account.Token, uc.cfg.UserAgent, account.Proxy)
	if err != nil {
		uc.metrics.RecordSession(false)
		logger.Error().
			Err(err).
			Str("proxy", account.Proxy.Addr()).
			Msgf("❌ Connection error: %v", err)
		return nil, heartbeaterrors.ErrSession
	}
	uc.metrics.RecordSession(true)

	if uc.cfg.PinFallbackIDs {
		session = &entities.AccountSession{
			UID:       entities.OrRandom(session.UID),
			BrowserID: entities.OrRandom(session.BrowserID),
			Name:      session.Name,
		}
	}

	logger.Info().
		Str("uid", session.UID).
		Str("name", session.Name).
		Bool("use_proxy", account.Proxy.Enabled()).
		Msgf("✅ Connected to session for UID: %s", session.UID)

	uc.notifier.Report(ctx, ReportText(session.Name, ReportConnected, account.Proxy))

	scheduler := uc.schedulers.Start(session.Name, uc.cfg.RetryInterval, func(ctx context.Context) error {
		return uc.sendPing(ctx, logger, session, account.Token, uc.cfg.UserAgent, account.Proxy)
	})
	uc.teardowns.Register(scheduler.Stop)

	return scheduler, nil
}

// ConnectAll connects every account and returns how many were connected.
// A failed account is logged and skipped.
func (uc *UseCase) ConnectAll(ctx context.Context, accounts []entities.Account) int {
	connected := 0
	for _, account := range accounts {
		if _, err := uc.Connect(ctx, account); err != nil {
			continue
		}
		connected++
	}

	uc.logger.Info().
		Int("accounts", len(accounts)).
		Int("connected", connected).
		Msg("Keepalive started")

	return connected
}

// SendPing sends one ping for session. Missing identifiers are replaced by
// fresh random ones on every call.
func (uc *UseCase) SendPing(ctx context.Context, session *entities.AccountSession, token, userAgent string, proxy *entities.ProxyRecord) error {
	return uc.sendPing(ctx, uc.logger, session, token, userAgent, proxy)
}

func (uc *UseCase) sendPing(
	ctx context.Context,
	logger zerolog.Logger,
	session *entities.AccountSession,
	token, userAgent string,
	proxy *entities.ProxyRecord,
) error {
	payload := &entities.PingPayload{
		ID:        entities.OrRandom(session.UID),
		BrowserID: entities.OrRandom(session.BrowserID),
		Timestamp: time.Now().Unix(),
		Version:   entities.ProtocolVersion,
	}

	start := time.Now()
	err := uc.pings.Ping(ctx, token, userAgent, proxy, payload)
	uc.metrics.RecordPing(err == nil, time.Since(start).Seconds())
	if err != nil {
		return heartbeaterrors.ErrPing
	}

	logger.Info().
		Str("uid", payload.ID).
		Str("browser_id", payload.BrowserID).
		Str("ip", proxyIP(proxy)).
		Msgf("📡 Ping sent for UID: %s", payload.ID)

	uc.notifier.Report(ctx, ReportText(session.Name, ReportPingSent, proxy))

	return nil
}

// BuildAccounts pairs tokens with proxies by index; a missing or empty
// proxy entry means a direct connection.
func BuildAccounts(cfg *config.AccountsConfig) ([]entities.Account, error) {
	if len(cfg.Tokens) == 0 {
		return nil, heartbeaterrors.ErrNoAccounts
	}

	accounts := make([]entities.Account, 0, len(cfg.Tokens))
	for i, token := range cfg.Tokens {
		account := entities.Account{Token: token}

		if i < len(cfg.Proxies) {
			proxy, err := entities.ParseProxy(cfg.Proxies[i])
			if err != nil {
				return nil, fmt.Errorf("%w: proxy #%d: %v", heartbeaterrors.ErrInvalidProxy, i+1, err)
			}
			account.Proxy = proxy
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

func proxyIP(proxy *entities.ProxyRecord) string {
	if !proxy.Enabled() {
		return "direct"
	}
	return proxy.Host
}
