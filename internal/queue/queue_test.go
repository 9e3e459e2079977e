package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudostake/vault-indexer/consumer"
	"github.com/sudostake/vault-indexer/internal/config"
	"github.com/sudostake/vault-indexer/internal/types"
)

func TestNewEventConsumer(t *testing.T) {
	t.Run("no queue configured", func(t *testing.T) {
		c, err := NewEventConsumer(nil)
		require.NoError(t, err)
		assert.IsType(t, consumer.NoopConsumer{}, c)
		require.NoError(t, c.Start())
		require.NoError(t, c.PushVaultStateChangedEvent(t.Context(), &consumer.VaultStateChangedEvent{}))
		require.NoError(t, c.Stop())
	})

	t.Run("queue configured", func(t *testing.T) {
		c, err := NewEventConsumer(&config.QueueConfig{
			URL:            "amqp://localhost:5672/",
			User:           "user",
			Password:       "password",
			Exchange:       "vault-events",
			PublishTimeout: time.Second,
		})
		require.NoError(t, err)
		assert.IsType(t, &QueueManager{}, c)
	})
}

func TestQueueManager_NotStarted(t *testing.T) {
	qm, err := NewQueueManager(&config.QueueConfig{
		URL:            "amqp://localhost:5672/",
		Exchange:       "vault-events",
		PublishTimeout: time.Second,
	})
	require.NoError(t, err)

	err = qm.PushVaultStateChangedEvent(t.Context(), &consumer.VaultStateChangedEvent{
		FactoryID: "factory.sudostake.near",
		VaultID:   "vault-1.factory.sudostake.near",
		NewState:  types.VaultStateActive,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not started")

	// stopping an idle manager releases nothing
	require.NoError(t, qm.Stop())

	_, err = NewQueueManager(nil)
	require.Error(t, err)
}

func TestQueueManager_InvalidURL(t *testing.T) {
	qm, err := NewQueueManager(&config.QueueConfig{
		URL:            "http://localhost:5672",
		Exchange:       "vault-events",
		PublishTimeout: time.Second,
	})
	require.NoError(t, err)

	err = qm.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid queue url")
}
