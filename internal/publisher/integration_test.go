//go:build integration

package publisher

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"creator_sync/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-" + name,
		RoutingKey: "test-routing-key-" + name,
		QueueName:  "test-queue-" + name,
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	s.NoError(pub.Close())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCreate() {
	cfg := s.config("create")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().UTC().Truncate(time.Millisecond)
	rec := &domain.ContentRecord{
		ID:               1,
		SourceAccountID:  10,
		Provider:         "youtube",
		ExternalID:       "dQw4w9WgXcQ",
		Title:            "Test Video",
		PublishedAt:      now,
		Statistics:       domain.Statistics{Views: 100, Likes: 5},
		IsAuthorizedData: true,
		ExpiresAt:        now.Add(domain.AuthorizedRetention),
		LastSyncedAt:     now,
	}

	s.Require().NoError(pub.PublishRecord(s.ctx, rec, true))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(TypeRecordCreated, msg.Type)
	s.NotEmpty(msg.MessageId)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received RecordMessage
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal("create", received.Action)
	s.Equal("dQw4w9WgXcQ", received.Record.ExternalID)
	s.Equal(int64(100), received.Record.Views)
	s.True(received.Record.IsAuthorizedData)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishUpdate() {
	cfg := s.config("update")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	rec := &domain.ContentRecord{ID: 2, Provider: "youtube", ExternalID: "abc"}
	s.Require().NoError(pub.PublishRecord(s.ctx, rec, false))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal(TypeRecordUpdated, msg.Type)

	var received RecordMessage
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal("update", received.Action)
	s.Equal("abc", received.Record.ExternalID)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishPurge() {
	cfg := s.config("purge")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	event := &domain.PurgeEvent{
		Policy:    domain.PolicyRevocation,
		AccountID: 42,
		Deleted:   7,
		At:        time.Now().UTC(),
	}
	s.Require().NoError(pub.PublishPurge(s.ctx, event))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal(TypeRecordsPurged, msg.Type)

	var received PurgeMessage
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(domain.PolicyRevocation, received.Purge.Policy)
	s.Equal(int64(42), received.Purge.AccountID)
	s.Equal(int64(7), received.Purge.Deleted)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
