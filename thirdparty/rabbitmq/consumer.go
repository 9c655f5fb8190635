package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/item-location/model"
	"github.com/muhammadheryan/item-location/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// LeaseExpirer removes a lease once it has run out.
type LeaseExpirer interface {
	ExpireLease(ctx context.Context, locationID uint64) error
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	expirer LeaseExpirer
}

func NewConsumer(host string, port int, user, password string, expirer LeaseExpirer) (*Consumer, error) {
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

	return &Consumer{conn: conn, channel: channel, expirer: expirer}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		LeaseQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var leaseMsg model.LeaseExpirationMessage
	if err := json.Unmarshal(msg.Body, &leaseMsg); err != nil {
		logger.Error("[Consumer] unmarshal lease message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.expirer.ExpireLease(ctx, leaseMsg.LocationID); err != nil {
		logger.Error("[Consumer] expire lease", zap.Uint64("location_id", leaseMsg.LocationID), zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Debug("[Consumer] lease expiration processed", zap.Uint64("location_id", leaseMsg.LocationID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

// InternalAPIExpirer expires leases through the service's internal endpoint.
type InternalAPIExpirer struct {
	APIURL string
	APIKey string
	Client *http.Client
}

func NewInternalAPIExpirer(apiURL, apiKey string) *InternalAPIExpirer {
	return &InternalAPIExpirer{
		APIURL: apiURL,
		APIKey: apiKey,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (e *InternalAPIExpirer) ExpireLease(ctx context.Context, locationID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/locations/%d/lease/expire", e.APIURL, locationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("expire lease API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
