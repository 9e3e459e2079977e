package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		cfg := &PollerConfig{
			VaultSyncInterval: time.Minute,
			SyncConcurrency:   3,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.SyncConcurrency)
	})

	t.Run("sync concurrency not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{
			VaultSyncInterval: time.Minute,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultSyncConcurrency, cfg.SyncConcurrency)
	})

	t.Run("sync concurrency negative - should error", func(t *testing.T) {
		cfg := &PollerConfig{
			VaultSyncInterval: time.Minute,
			SyncConcurrency:   -1,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync-concurrency")
	})

	t.Run("vault sync interval not set - should error", func(t *testing.T) {
		cfg := &PollerConfig{}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vault-sync-interval must be positive")
	})
}
