// Package publisher broadcasts cache changes over RabbitMQ so downstream
// consumers (search indexers, push notification senders) can react without
// polling the store.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tonyawino/News-App/internal/domain"
)

const (
	actionCreated = "created"
	actionUpdated = "updated"
)

// Config holds the connection and topology settings for the publisher.
// RoutingKey is a prefix; the action is appended per message, so a queue
// bound to "<RoutingKey>.*" sees every change and one bound to
// "<RoutingKey>.created" sees only new items.
type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// RabbitMQ publishes news change events on a durable topic exchange.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     Config
	logger  *slog.Logger
}

// NewsMessage is one change event on the local news cache.
type NewsMessage struct {
	Action    string      `json:"action"` // "created" or "updated"
	News      domain.News `json:"news"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewRabbitMQ connects, declares the exchange and queue, and binds the queue
// to every action under the configured routing key prefix.
func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:    conn,
		channel: ch,
		cfg:     cfg,
		logger:  logger.With("component", "publisher"),
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey+".*", cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Publish sends one change event. isNew picks the action and with it the
// routing key suffix.
func (r *RabbitMQ) Publish(ctx context.Context, item *domain.News, isNew bool) error {
	action := actionUpdated
	if isNew {
		action = actionCreated
	}

	body, err := json.Marshal(NewsMessage{
		Action:    action,
		News:      *item,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(ctx,
		r.cfg.Exchange,
		r.cfg.RoutingKey+"."+action,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published news change", "id", item.ID, "action", action)
	return nil
}

// Close releases the channel and connection. Safe to call once.
func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
