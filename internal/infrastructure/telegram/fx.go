package telegram

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/keepalive-service/config"
)

// Module provides Telegram bot for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideBot),
)

// provideBot creates the Telegram bot when the notifier is enabled.
// A nil bot means reports are not sent; startup never fails because of it.
func provideBot(cfg *config.TelegramConfig, logger zerolog.Logger) *Bot {
	if !cfg.Enabled {
		logger.Info().Msg("Telegram notifier disabled")
		return nil
	}

	bot, err := NewBot(cfg.BotToken, cfg.APIURL, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Telegram notifier unavailable, reports will not be sent")
		return nil
	}

	return bot
}
