// Package telegram contains the Telegram-backed status notifier
package telegram

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Conte777/keepalive-service/config"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	heartbeaterrors "github.com/Conte777/keepalive-service/internal/domain/heartbeat/errors"
	"github.com/Conte777/keepalive-service/internal/infrastructure/metrics"
	"github.com/Conte777/keepalive-service/internal/infrastructure/telegram"
)

// Notifier mirrors status reports to a Telegram chat. A nil bot disables it.
type Notifier struct {
	bot     *telegram.Bot
	chatID  string
	limiter *rate.Limiter
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewNotifier creates a notifier; reports above cfg.RatePerSec are dropped
func NewNotifier(cfg *config.TelegramConfig, bot *telegram.Bot, m *metrics.Metrics, logger zerolog.Logger) deps.Notifier {
	limit := rate.Limit(cfg.RatePerSec)
	if cfg.RatePerSec <= 0 {
		limit = rate.Inf
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Notifier{
		bot:     bot,
		chatID:  cfg.ChatID,
		limiter: rate.NewLimiter(limit, burst),
		metrics: m,
		logger:  logger.With().Str("component", "notifier").Logger(),
	}
}

// Report sends text to the configured chat. Failures are logged and swallowed.
func (n *Notifier) Report(ctx context.Context, text string) {
	if n.bot == nil {
		return
	}

	if !n.limiter.Allow() {
		n.metrics.RecordNotification(metrics.ResultDropped)
		n.logger.Warn().Msg("Report dropped: notifier rate limit reached")
		return
	}

	if err := n.deliver(ctx, text); err != nil {
		n.metrics.RecordNotification(metrics.ResultFailure)
		n.logger.Error().Err(err).Msg("❌ Failed to send report to Telegram")
		return
	}

	n.metrics.RecordNotification(metrics.ResultSuccess)
	n.logger.Info().Msg("📤 Report sent to Telegram")
}

// deliver sends text and wraps any Bot API failure in ErrNotifier
func (n *Notifier) deliver(ctx context.Context, text string) error {
	if err := n.bot.SendText(ctx, n.chatID, text); err != nil {
		return fmt.Errorf("%w: %v", heartbeaterrors.ErrNotifier, err)
	}
	return nil
}
