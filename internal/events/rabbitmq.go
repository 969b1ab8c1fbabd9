package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"careers/internal/config"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQ publishes JSON events to a durable topic exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	ch         channel
	exchange   string
	routingKey string
	mu         sync.Mutex
}

var _ Publisher = (*RabbitMQ)(nil)

// NewRabbitMQ dials the broker and declares the exchange.
func NewRabbitMQ(cfg config.RabbitMQConfig) (*RabbitMQ, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("rabbitmq url is required")
	}
	if cfg.Exchange == "" {
		return nil, fmt.Errorf("rabbitmq exchange is required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	return &RabbitMQ{conn: conn, ch: ch, exchange: cfg.Exchange, routingKey: cfg.RoutingKey}, nil
}

func (r *RabbitMQ) PublishApplicationSubmitted(ctx context.Context, ev ApplicationSubmitted) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	err = r.ch.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ApplicationID,
		Timestamp:    time.Now().UTC(),
		Type:         "application.submitted",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.ApplicationID, err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.ch.Close()
	if r.conn != nil {
		err = errors.Join(err, r.conn.Close())
	}
	return err
}
