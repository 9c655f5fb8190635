package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/item-location/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange = "item_location_events"

	LeaseExchange   = "location_lease_exchange"
	LeaseQueue      = "location_lease_queue"
	LeaseRoutingKey = "lease_expiration"
)

// EventPublisher is what the application layer needs from the broker.
type EventPublisher interface {
	PublishAssignmentEvent(ctx context.Context, msg model.AssignmentEventMessage) error
	PublishLeaseExpiration(ctx context.Context, msg model.LeaseExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareTopology is shared by publisher and consumer so either may start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-delete
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return err
	}

	err = channel.ExchangeDeclare(
		LeaseExchange,
		"x-delayed-message",
		true,
		false,
		false,
		false,
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		LeaseQueue, // name
		true,       // durable
		false,      // auto-delete
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(LeaseQueue, LeaseRoutingKey, LeaseExchange, false, nil)
}

func (p *Publisher) PublishAssignmentEvent(ctx context.Context, msg model.AssignmentEventMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		EventsExchange,    // exchange
		string(msg.Event), // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

// PublishLeaseExpiration schedules a message that fires when the lease runs out.
func (p *Publisher) PublishLeaseExpiration(ctx context.Context, msg model.LeaseExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	delayMs := time.Until(msg.ExpiresAt).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		LeaseExchange,
		LeaseRoutingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Headers: amqp091.Table{
				"x-delay": delayMs,
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every message; used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishAssignmentEvent(context.Context, model.AssignmentEventMessage) error {
	return nil
}

func (NoopPublisher) PublishLeaseExpiration(context.Context, model.LeaseExpirationMessage) error {
	return nil
}
