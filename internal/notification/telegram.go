package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts a line to the organizers' chat for every check-in.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	return newTelegramNotifier(token, tgbotapi.APIEndpoint, chatID, logger)
}

func newTelegramNotifier(token, endpoint string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyCheckedIn(ctx context.Context, event *domain.Event, attendee *domain.Attendee) {
	at := ""
	if attendee.CheckedInAt != nil {
		at = attendee.CheckedInAt.Format("02.01.2006 15:04")
	}
	text := fmt.Sprintf(
		"*Checked in*\n\n"+"Event: %s\n"+"Attendee: %s (%s)\n"+"Ticket: %s\n"+"Time (UTC): %s",
		escape(event.Title),
		escape(attendee.Name),
		escape(attendee.StudentID),
		escape(string(attendee.TicketType)),
		at,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	start := time.Now()
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
		return
	}
	n.logger.Debug("telegram notification sent",
		logger.Int64("chat_id", n.chatID),
		logger.Duration("took", time.Since(start)),
	)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
