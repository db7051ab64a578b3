// Package messaging publishes domain event envelopes to RabbitMQ.
package messaging

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tradesbook-ie/tradesbook/internal/application/notification"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type Config struct {
	URL string
	// Queue is declared durable. With no Exchange, messages go to it through
	// the default exchange.
	Queue string
	// Exchange, when set, is declared as a durable topic exchange bound to
	// Queue with "#", and the event type is used as routing key.
	Exchange string
}

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher keeps one connection open and redials after a failure.
type RabbitMQPublisher struct {
	cfg    Config
	logger logger.Interface
	dial   func(cfg Config) (*amqp.Connection, channel, error)

	mu   sync.Mutex
	conn *amqp.Connection
	ch   channel
}

func NewRabbitMQPublisher(cfg Config, logger logger.Interface) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		cfg:    cfg,
		logger: logger,
		dial:   dialAndDeclare,
	}
}

func dialAndDeclare(cfg Config) (*amqp.Connection, channel, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	if cfg.Exchange != "" {
		if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
		}
		if err := ch.QueueBind(cfg.Queue, "#", cfg.Exchange, false, nil); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("rabbitmq queue bind: %w", err)
		}
	}
	return conn, ch, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		conn, ch, err := p.dial(p.cfg)
		if err != nil {
			return err
		}
		p.conn, p.ch = conn, ch
	}

	exchange, key := p.cfg.Exchange, routingKey
	if exchange == "" {
		key = p.cfg.Queue
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, exchange, key, false, false, msg); err != nil {
		p.logger.Warnw("rabbitmq publish failed, dropping channel", "routing_key", routingKey, "error", err)
		p.reset()
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

func (p *RabbitMQPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

var _ notification.MessagePublisher = (*RabbitMQPublisher)(nil)
