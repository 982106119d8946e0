package notification

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, s.err
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 0, discardLogger())
	require.NoError(t, err)
	b, e := testBooking()

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), b, e)
		n.NotifyBookingCancelled(context.Background(), b, e)
	})
}

func TestTelegramNotifier_Send(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, chatID: 42, logger: discardLogger()}
	b, e := testBooking()

	n.NotifyBookingCreated(context.Background(), b, e)
	n.NotifyBookingCancelled(context.Background(), b, e)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, int64(42), sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[0].Text, "Go Meetup")
	assert.Contains(t, sender.sent[0].Text, "Booked: 10/50")
	assert.Equal(t, tgbotapi.ModeMarkdown, sender.sent[0].ParseMode)
	assert.Contains(t, sender.sent[1].Text, "Booking cancelled")
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, chatID: 42, logger: discardLogger()}
	b, e := testBooking()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyBookingCreated(ctx, b, e)

	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("forbidden")}
	n := &TelegramNotifier{bot: sender, chatID: 42, logger: discardLogger()}
	b, e := testBooking()

	assert.NotPanics(t, func() { n.NotifyBookingCreated(context.Background(), b, e) })
}
