// Package telegram contains Telegram Bot API infrastructure
package telegram

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
)

// Bot wraps the Telegram bot for infrastructure layer
type Bot struct {
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper. serverURL may point to a
// self-hosted Bot API server; empty means the public one.
func NewBot(token, serverURL string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	var opts []tgbot.Option
	if serverURL != "" {
		opts = append(opts, tgbot.WithServerURL(serverURL))
	}

	bot, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Msg("Telegram bot created successfully")

	return &Bot{
		bot:    bot,
		logger: logger,
	}, nil
}

// SendText posts text to chatID. A response without "ok": true is returned as an error.
func (b *Bot) SendText(ctx context.Context, chatID, text string) error {
	_, err := b.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("sendMessage failed: %w", err)
	}
	return nil
}
