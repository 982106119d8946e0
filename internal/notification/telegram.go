package notification

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rawatanuj07/eventease/internal/domain"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts booking activity to the organisers' chat.
type TelegramNotifier struct {
	bot    telegramSender
	chatID int64
	logger *slog.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger *slog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Event: %s\n"+"Date: %s %s\n"+"User: %s\n"+"Seats: %d\n"+"Booked: %d/%d",
		e.Title, e.Date.Format("02.01.2006"), e.Time, b.UserID, b.SeatsBooked, e.BookedSeats, e.Capacity,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, e *domain.Event) {
	title := b.EventID
	if e != nil {
		title = e.Title
	}
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Event: %s\n"+"User: %s\n"+"Seats released: %d",
		title, b.UserID, b.SeatsBooked,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", slog.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", slog.Int64("chat_id", n.chatID))
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			slog.Int64("chat_id", n.chatID),
			slog.String("error", err.Error()),
		)
	}
}
