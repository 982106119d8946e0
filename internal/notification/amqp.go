package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rawatanuj07/eventease/internal/domain"
)

const publishTimeout = 3 * time.Second

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher puts booking lifecycle events on a durable queue through the
// default exchange.
type AMQPPublisher struct {
	ch     amqpChannel
	queue  string
	logger *slog.Logger
}

func NewAMQPPublisher(conn *amqp.Connection, queue string, logger *slog.Logger) (*AMQPPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare %s: %w", queue, err)
	}

	return newAMQPPublisher(ch, queue, logger), nil
}

func newAMQPPublisher(ch amqpChannel, queue string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, queue: queue, logger: logger}
}

func (p *AMQPPublisher) NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event) {
	p.publish(ctx, newEnvelope(TypeBookingCreated, b, e))
}

func (p *AMQPPublisher) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, e *domain.Event) {
	p.publish(ctx, newEnvelope(TypeBookingCancelled, b, e))
}

func (p *AMQPPublisher) Close() error {
	return p.ch.Close()
}

func (p *AMQPPublisher) publish(ctx context.Context, env Envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		p.logger.Error("failed to marshal booking event",
			slog.String("type", env.Type),
			slog.String("error", err.Error()),
		)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(pubCtx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    env.OccurredAt,
		Type:         env.Type,
		MessageId:    env.Payload.BookingID,
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish booking event",
			slog.String("type", env.Type),
			slog.String("booking_id", env.Payload.BookingID),
			slog.String("error", err.Error()),
		)
		return
	}

	p.logger.Debug("booking event published",
		slog.String("type", env.Type),
		slog.String("booking_id", env.Payload.BookingID),
	)
}
