// Package queue publishes JSON events to RabbitMQ. Each publish opens its
// own connection, so a broker outage only affects the call that hits it.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	url   string
	queue string
	dial  func(ctx context.Context, url string) (*amqp.Connection, error)
}

func NewPublisher(url, queue string) *Publisher {
	return &Publisher{url: url, queue: queue, dial: dialContext}
}

// dialContext opens a connection whose TCP dial and AMQP handshake are bounded by ctx
func dialContext(ctx context.Context, url string) (*amqp.Connection, error) {
	return amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			var dialer net.Dialer
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			// cleared by the client once the handshake completes
			if deadline, ok := ctx.Deadline(); ok {
				if err := conn.SetDeadline(deadline); err != nil {
					_ = conn.Close()
					return nil, err
				}
			}
			return conn, nil
		},
	})
}

func (p *Publisher) IsConfigured() bool {
	return p.url != "" && p.queue != ""
}

func (p *Publisher) Queue() string {
	return p.queue
}

// Publish declares the durable queue and sends event as a persistent JSON message
func (p *Publisher) Publish(ctx context.Context, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("queue: marshal event: %w", err)
	}

	conn, err := p.dial(ctx, p.url)
	if err != nil {
		return fmt.Errorf("queue: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("queue: open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("queue: declare %s: %w", p.queue, err)
	}

	return ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
