package rmqconsumer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"customer-manager/config"
	"customer-manager/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

const (
	ActionCreated = "CustomerCreated"
	ActionUpdated = "CustomerUpdated"
	ActionDeleted = "CustomerDeleted"
)

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, conn *amqp091.Connection) *Consumer {
	return &Consumer{
		cfg:  cfg,
		log:  logger,
		conn: conn,
	}
}

// Connect reuses the connection handed to New when it is still open and
// dials dsn otherwise.
func (c *Consumer) Connect(dsn string) error {
	if c.conn == nil || c.conn.IsClosed() {
		conn, err := amqp091.Dial(dsn)
		if err != nil {
			return fmt.Errorf("amqp dial: %w", err)
		}
		c.conn = conn
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.chConsume = ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range mq.RoutingKeys {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	deliveries, err := c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	c.chDelivery = deliveries

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				return
			}
			if err := c.delivery(msg); err != nil {
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			_ = c.chConsume.Close()
			return
		}
	}
}

// Action names the change a routing key stands for, or "" when unknown.
func Action(routingKey string) string {
	switch routingKey {
	case http.MethodPost:
		return ActionCreated
	case http.MethodPut:
		return ActionUpdated
	case http.MethodDelete:
		return ActionDeleted
	}
	return ""
}

func (c *Consumer) delivery(msg amqp091.Delivery) error {
	action := Action(msg.RoutingKey)
	if action == "" {
		return fmt.Errorf("unknown routing key %q", msg.RoutingKey)
	}

	c.log.Info("customer change",
		zap.String("action", action),
		zap.String("message_id", msg.MessageId),
		zap.Any("customer_id", msg.Headers["customer_id"]),
		zap.ByteString("event", msg.Body),
	)

	return nil
}
