// Package listener consumes consent-change messages published by the
// platform and applies them to stored records and sync state.
package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"creator_sync/internal/domain"
	"creator_sync/internal/metrics"
	"creator_sync/internal/publisher"
)

var errMalformed = errors.New("malformed consent message")

type Config struct {
	URL        string
	Exchange   string
	QueueName  string
	RoutingKey string
}

type ConsentListener struct {
	cfg         Config
	writer      ConsentWriter
	invalidator ConsentInvalidator
	revoker     Revoker
	granter     Granter
	validate    *validator.Validate
	logger      *slog.Logger
}

func NewConsentListener(
	cfg Config,
	writer ConsentWriter,
	invalidator ConsentInvalidator,
	revoker Revoker,
	granter Granter,
	logger *slog.Logger,
) *ConsentListener {
	return &ConsentListener{
		cfg:         cfg,
		writer:      writer,
		invalidator: invalidator,
		revoker:     revoker,
		granter:     granter,
		validate:    validator.New(),
		logger:      logger.With("component", "consent_listener"),
	}
}

func (l *ConsentListener) String() string {
	return "consent-listener"
}

// Serve consumes until ctx is cancelled or the broker connection drops. A
// dropped connection is returned as an error so the supervisor reconnects.
func (l *ConsentListener) Serve(ctx context.Context) error {
	conn, err := amqp.Dial(l.cfg.URL)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := publisher.DeclareTopology(ch, l.cfg.Exchange, l.cfg.QueueName, l.cfg.RoutingKey); err != nil {
		return err
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, l.cfg.QueueName, l.String(), false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	closed := conn.NotifyClose(make(chan *amqp.Error, 1))

	l.logger.Info("consuming consent changes", "queue", l.cfg.QueueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case amqpErr := <-closed:
			return fmt.Errorf("rabbitmq connection closed: %v", amqpErr)
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			l.deliver(ctx, d)
		}
	}
}

func (l *ConsentListener) deliver(ctx context.Context, d amqp.Delivery) {
	err := l.Handle(ctx, d.Body)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errors.Is(err, errMalformed):
		l.logger.Error("dropping malformed consent message", "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, false)
	default:
		// one redelivery, then the message is dropped
		l.logger.Error("consent change failed", "message_id", d.MessageId, "redelivered", d.Redelivered, "error", err)
		_ = d.Nack(false, !d.Redelivered)
	}
}

// Handle applies one consent-change message body.
func (l *ConsentListener) Handle(ctx context.Context, body []byte) error {
	var change domain.ConsentChange
	if err := json.Unmarshal(body, &change); err != nil {
		metrics.ConsentChanges.WithLabelValues("unknown", "invalid").Inc()
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	granted := strconv.FormatBool(change.Granted)
	if err := l.validate.Struct(change); err != nil {
		metrics.ConsentChanges.WithLabelValues(granted, "invalid").Inc()
		return fmt.Errorf("%w: %v", errMalformed, err)
	}

	logger := l.logger.With("owner_id", change.OwnerID, "granted", change.Granted)

	if err := l.writer.SetConsent(ctx, change.OwnerID, change.Granted); err != nil {
		metrics.ConsentChanges.WithLabelValues(granted, "error").Inc()
		return fmt.Errorf("store consent: %w", err)
	}
	l.invalidator.Invalidate(change.OwnerID)

	if change.Granted {
		if err := l.granter.HandleConsentGranted(ctx, change.OwnerID); err != nil {
			metrics.ConsentChanges.WithLabelValues(granted, "error").Inc()
			return fmt.Errorf("schedule resync: %w", err)
		}
		logger.Info("consent granted")
	} else {
		revocations, err := l.revoker.RevokeOwnerConsent(ctx, change.OwnerID)
		if err != nil {
			metrics.ConsentChanges.WithLabelValues(granted, "error").Inc()
			return fmt.Errorf("revoke consent: %w", err)
		}
		var deleted int64
		for _, r := range revocations {
			deleted += r.Deleted
		}
		logger.Info("consent withdrawn", "accounts", len(revocations), "deleted", deleted)
	}

	metrics.ConsentChanges.WithLabelValues(granted, "ok").Inc()
	return nil
}
