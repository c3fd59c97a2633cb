package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"creator_sync/internal/domain"
)

// Message types set on the AMQP Type property.
const (
	TypeRecordCreated = "record.created"
	TypeRecordUpdated = "record.updated"
	TypeRecordsPurged = "records.purged"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

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

	if err := DeclareTopology(ch, cfg.Exchange, cfg.QueueName, cfg.RoutingKey); err != nil {
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
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// DeclareTopology declares the durable direct exchange and binds a durable
// queue to it.
func DeclareTopology(ch *amqp.Channel, exchange, queue, routingKey string) error {
	err := ch.ExchangeDeclare(
		exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

type RecordMessage struct {
	Action    string               `json:"action"` // "create" or "update"
	Record    domain.ContentRecord `json:"record"`
	Timestamp time.Time            `json:"timestamp"`
}

type PurgeMessage struct {
	Purge     domain.PurgeEvent `json:"purge"`
	Timestamp time.Time         `json:"timestamp"`
}

func (r *RabbitMQ) PublishRecord(ctx context.Context, rec *domain.ContentRecord, isNew bool) error {
	action, msgType := "update", TypeRecordUpdated
	if isNew {
		action, msgType = "create", TypeRecordCreated
	}

	msg := RecordMessage{
		Action:    action,
		Record:    *rec,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, msgType, msg); err != nil {
		return err
	}

	r.logger.Debug("published record",
		"external_id", rec.ExternalID,
		"action", action,
	)
	return nil
}

func (r *RabbitMQ) PublishPurge(ctx context.Context, event *domain.PurgeEvent) error {
	msg := PurgeMessage{
		Purge:     *event,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, TypeRecordsPurged, msg); err != nil {
		return err
	}

	r.logger.Debug("published purge",
		"policy", event.Policy,
		"account_id", event.AccountID,
		"deleted", event.Deleted,
	)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, msgType string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Type:         msgType,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
