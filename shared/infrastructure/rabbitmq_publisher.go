package infrastructure

import (
	"context"
	"sync"

	"github.com/draftea/booking-system/shared/events"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

var _ events.Publisher = (*RabbitMQPublisher)(nil)

// amqpChannel is the part of *amqp.Channel the publisher uses
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
	// Queue is declared durable and bound to every topic matching BindingKey
	Queue      string
	BindingKey string
}

// RabbitMQPublisher publishes events to a topic exchange, routed by event topic
type RabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
}

// NewRabbitMQPublisher dials the broker and declares the exchange, queue and binding
func NewRabbitMQPublisher(cfg RabbitMQConfig) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to open channel")
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to declare exchange")
	}

	if cfg.Queue != "" {
		if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, errors.Wrap(err, "failed to declare queue")
		}

		bindingKey := cfg.BindingKey
		if bindingKey == "" {
			bindingKey = "#"
		}
		if err := ch.QueueBind(cfg.Queue, bindingKey, cfg.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, errors.Wrap(err, "failed to bind queue")
		}
	}

	return &RabbitMQPublisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func newRabbitMQPublisherWithChannel(ch amqpChannel, exchange string) *RabbitMQPublisher {
	return &RabbitMQPublisher{ch: ch, exchange: exchange}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range evts {
		body, err := events.Encode(event)
		if err != nil {
			return errors.Wrap(err, "failed to encode event")
		}

		headers := amqp.Table{}
		for k, v := range event.Metadata {
			if !isTransportKey(k) {
				headers[k] = v
			}
		}

		err = p.ch.PublishWithContext(ctx, p.exchange, event.Topic.String(), false, false, amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			MessageId:     event.ID.String(),
			CorrelationId: event.CorrelationID.String(),
			Timestamp:     event.Timestamp,
			Type:          event.Topic.String(),
			Headers:       headers,
			Body:          body,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to publish event %s", event.ID)
		}
	}

	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
