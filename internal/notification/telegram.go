package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

const eventDateLayout = "02.01.2006 15:04"

// TelegramNotifier delivers registration updates to volunteers who linked a
// Telegram chat. With an empty token it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRegistrationConfirmed(ctx context.Context, v *domain.Volunteer, e *domain.Event) {
	text := fmt.Sprintf(
		"*You are registered!*\n\nEvent: %s\nWhen (UTC): %s\nWhere: %s",
		e.Title, e.EventDate.Format(eventDateLayout), e.Location,
	)
	n.send(ctx, v.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRegistrationCancelled(ctx context.Context, v *domain.Volunteer, e *domain.Event) {
	text := fmt.Sprintf(
		"*Registration cancelled*\n\nEvent: %s\nWhen (UTC): %s",
		e.Title, e.EventDate.Format(eventDateLayout),
	)
	n.send(ctx, v.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyEventReminder(ctx context.Context, v *domain.Volunteer, e *domain.Event) {
	text := fmt.Sprintf(
		"*Upcoming event reminder*\n\nEvent: %s\nWhen (UTC): %s\nWhere: %s\nSee you there!",
		e.Title, e.EventDate.Format(eventDateLayout), e.Location,
	)
	n.send(ctx, v.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil || chatID == nil {
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
