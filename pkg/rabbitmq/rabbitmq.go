package rabbitmq

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"shop/internal/logger"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	amqp "github.com/streadway/amqp"
)

const (
	DefaultExchange = "order"
	DefaultQueue    = "order_queue"

	// RoutingOrderCreated is published once an order has been committed.
	RoutingOrderCreated = "order.created"
)

// ErrMalformedMessage marks a delivery that can never be processed. Such
// messages are dropped instead of requeued.
var ErrMalformedMessage = errors.New("malformed message")

// OrderCreatedEvent is the body of an order.created message.
type OrderCreatedEvent struct {
	OrderID     uuid.UUID       `json:"orderId"`
	Code        string          `json:"code"`
	CustomerID  *uuid.UUID      `json:"customerId,omitempty"`
	Email       string          `json:"email"`
	Status      string          `json:"status"`
	TotalItem   int             `json:"totalItem"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string
	Queue    string
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
}

// NewClient connects to RabbitMQ, declares the order exchange and a durable
// queue bound to every order.* routing key.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", cfg.Queue, err)
	}

	if err := ch.QueueBind(cfg.Queue, "order.#", cfg.Exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind %s: %w", cfg.Queue, err)
	}

	logger.Info().Str("exchange", cfg.Exchange).Str("queue", cfg.Queue).Msg("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends a persistent JSON message to exchange.
func (c *Client) Publish(exchange, routingKey string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.Publish(exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug().Str("exchange", exchange).Str("routing_key", routingKey).Msg("Message published")
	return nil
}

// Consume delivers messages from the order queue to handler in a background
// goroutine. See settle for how handler errors are answered.
func (c *Client) Consume(handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logger.Info().Str("queue", c.queue).Msg("Waiting for order events")

	go func() {
		for msg := range msgs {
			settle(msg, handler(msg))
		}
	}()

	return nil
}

// settle acks msg when handled is nil. Malformed messages are rejected
// without requeue; any other failure is requeued for another attempt.
func settle(msg amqp.Delivery, handled error) {
	tag := msg.DeliveryTag
	switch {
	case handled == nil:
		if err := msg.Ack(false); err != nil {
			logger.Error().Err(err).Uint64("delivery_tag", tag).Msg("Error acking message")
		}
	case errors.Is(handled, ErrMalformedMessage):
		logger.Warn().Err(handled).Uint64("delivery_tag", tag).Bytes("body", msg.Body).Msg("Dropping malformed message")
		if err := msg.Nack(false, false); err != nil {
			logger.Error().Err(err).Uint64("delivery_tag", tag).Msg("Error nacking message")
		}
	default:
		logger.Error().Err(handled).Uint64("delivery_tag", tag).Msg("Error processing message")
		if err := msg.Nack(false, true); err != nil {
			logger.Error().Err(err).Uint64("delivery_tag", tag).Msg("Error nacking message")
		}
	}
}

// HandleOrderMessage decodes an order event and logs it. Unknown routing
// keys are acknowledged and ignored.
func HandleOrderMessage(msg amqp.Delivery) error {
	if msg.RoutingKey != "" && msg.RoutingKey != RoutingOrderCreated {
		logger.Debug().Str("routing_key", msg.RoutingKey).Msg("Ignoring order message")
		return nil
	}

	var event OrderCreatedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to decode order event"), ErrMalformedMessage)
	}
	if event.OrderID == uuid.Nil {
		return errors.Mark(errors.New("order event without order id"), ErrMalformedMessage)
	}

	logger.Info().
		Str("order_id", event.OrderID.String()).
		Str("code", event.Code).
		Str("total", event.TotalAmount.StringFixed(2)).
		Int("items", event.TotalItem).
		Msg("Order created")
	return nil
}
