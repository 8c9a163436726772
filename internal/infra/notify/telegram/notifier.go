// Package telegram delivers monitor notifications as Telegram messages
// through the Bot API.
package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/kaswatch/internal/monitor"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type notifier struct {
	bot *tgbotapi.BotAPI
}

// Compile-time assertion that *notifier satisfies monitor.Notifier.
var _ monitor.Notifier = (*notifier)(nil)

// NewNotifier authenticates against the Telegram Bot API with the given bot
// token and returns a notifier that delivers messages through it.
func NewNotifier(token string) (*notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authenticating telegram bot: %w", err)
	}

	return &notifier{bot: bot}, nil
}

// Deliver sends the notification text to the chat identified by the
// notification's destination. The destination must be a numeric Telegram
// chat ID.
func (n *notifier) Deliver(_ context.Context, notification monitor.Notification) error {
	chatID, err := strconv.ParseInt(notification.Destination, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing destination %q as chat id: %w", notification.Destination, err)
	}

	msg := tgbotapi.NewMessage(chatID, notification.Text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}

	return nil
}
