// Package notify forwards unexpected errors to an external alerting channel.
// Delivery is best-effort and asynchronous; the primary response path never
// waits on it.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends error reports to an external sink.
type Notifier interface {
	Notify(err error)
}

// Noop is a Notifier that discards everything. Used when no Telegram
// credentials are configured and in tests.
type Noop struct{}

// Notify implements Notifier.
func (Noop) Notify(err error) {}

// TelegramNotifier posts error messages to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram creates a Telegram notifier. Returns an error if the bot
// token is rejected by the Telegram API.
func NewTelegram(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// Notify forwards the error text to the configured chat in a goroutine.
// Failures are only logged.
func (n *TelegramNotifier) Notify(err error) {
	if err == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("an error occurred: %v", err))
	go func() {
		if _, sendErr := n.bot.Send(msg); sendErr != nil {
			log.Printf("notify telegram: %v", sendErr)
		}
	}()
}
