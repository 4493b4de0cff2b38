// Package service publishes inventory change events to RabbitMQ.  Failures
// are logged and returned so callers can ignore them without interrupting the
// request that triggered the event.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
)

// Publisher delivers an event somewhere downstream.
type Publisher interface {
	Publish(ctx context.Context, ev queue.InventoryChanged) error
}

const dialTimeout = 2 * time.Second

// AMQPPublisher dials the broker per event.  The dial timeout is short
// because publishing happens inline with the request.
type AMQPPublisher struct {
	url    string
	logger *slog.Logger
}

func NewAMQPPublisher(url string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{url: url, logger: logger}
}

// Publish sends ev to the durable inventory queue as a persistent message.
func (p *AMQPPublisher) Publish(ctx context.Context, ev queue.InventoryChanged) error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		p.logger.Warn("rabbitmq: dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("rabbitmq: channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue.InventoryQueueName, // name
		true,                     // durable
		false,                    // autoDelete
		false,                    // exclusive
		false,                    // noWait
		nil,                      // args
	); err != nil {
		p.logger.Warn("rabbitmq: queue declare failed", "err", err)
		return err
	}

	body, err := encodeEvent(ev)
	if err != nil {
		p.logger.Warn("rabbitmq: marshal event failed", "err", err)
		return err
	}

	if err := ch.PublishWithContext(ctx, "", queue.InventoryQueueName, false, false, body); err != nil {
		p.logger.Warn("rabbitmq: publish failed", "err", err)
		return err
	}
	return nil
}

func encodeEvent(ev queue.InventoryChanged) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}

// Noop discards events; used when EVENTS_ENABLED is off.
type Noop struct{}

func (Noop) Publish(context.Context, queue.InventoryChanged) error { return nil }
