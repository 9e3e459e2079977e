package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/sudostake/vault-indexer/consumer"
	"github.com/sudostake/vault-indexer/internal/config"
	"github.com/sudostake/vault-indexer/internal/observability/metrics"
)

const (
	exchangeKind = "topic"

	VaultStateChangedRoutingKey = "vault.state_changed"
)

// QueueManager publishes vault events to a rabbitmq topic exchange.
type QueueManager struct {
	cfg *config.QueueConfig

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ consumer.EventConsumer = (*QueueManager)(nil)

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	if cfg == nil {
		return nil, errors.New("queue config is nil")
	}

	return &QueueManager{cfg: cfg}, nil
}

// NewEventConsumer returns a QueueManager when a queue is configured and a NoopConsumer otherwise.
func NewEventConsumer(cfg *config.QueueConfig) (consumer.EventConsumer, error) {
	if cfg == nil {
		log.Info().Msg("Queue is not configured, vault events won't be published")
		return consumer.NoopConsumer{}, nil
	}

	return NewQueueManager(cfg)
}

// Start connects to the broker and declares the exchange.
func (qm *QueueManager) Start() error {
	uri, err := amqp.ParseURI(qm.cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid queue url: %w", err)
	}
	uri.Username = qm.cfg.User
	uri.Password = qm.cfg.Password

	conn, err := amqp.Dial(uri.String())
	if err != nil {
		return fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open queue channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		qm.cfg.Exchange,
		exchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange %s: %w", qm.cfg.Exchange, err)
	}

	qm.mu.Lock()
	qm.conn = conn
	qm.channel = channel
	qm.mu.Unlock()

	log.Info().Str("exchange", qm.cfg.Exchange).Msg("Connected to queue")
	return nil
}

func (qm *QueueManager) PushVaultStateChangedEvent(ctx context.Context, ev *consumer.VaultStateChangedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal vault event: %w", err)
	}

	if err := qm.publish(ctx, VaultStateChangedRoutingKey, body); err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to push vault state changed event of %s: %w", ev.VaultID, err)
	}

	log.Ctx(ctx).Debug().
		Str("vault", ev.VaultID).
		Str("new_state", ev.NewState.String()).
		Msg("Pushed vault state changed event")

	return nil
}

func (qm *QueueManager) publish(ctx context.Context, routingKey string, body []byte) error {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.channel == nil {
		return errors.New("queue manager is not started")
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	return qm.channel.PublishWithContext(ctx,
		qm.cfg.Exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Body:         body,
		},
	)
}

// Stop gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Stop() error {
	log.Info().Msg("Shutting down queue manager")

	qm.mu.Lock()
	defer qm.mu.Unlock()

	var errs []error
	if qm.channel != nil {
		errs = append(errs, qm.channel.Close())
		qm.channel = nil
	}
	if qm.conn != nil {
		errs = append(errs, qm.conn.Close())
		qm.conn = nil
	}

	return errors.Join(errs...)
}
