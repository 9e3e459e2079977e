package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Near: *DefaultNearConfig(),
		Factories: FactoriesConfig{
			{ID: "factory.sudostake.near", RPCOrigin: "https://rpc.mainnet.near.org"},
			{ID: "nzaza.testnet", RPCOrigin: "https://rpc.testnet.near.org"},
		},
		Protocol: *DefaultProtocolConfig(),
		Poller: PollerConfig{
			VaultSyncInterval: time.Minute,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
	}
}

func TestConfig_OptionalQueue(t *testing.T) {
	cfg := validConfig()
	cfg.Queue = &QueueConfig{
		URL:      "amqp://localhost:5672",
		User:     "user",
		Password: "pass",
		Exchange: "vault-events",
	}

	err := cfg.Validate()
	require.NoError(t, err)
	assert.Equal(t, defaultPublishTimeout, cfg.Queue.PublishTimeout)

	// queue config absent
	cfg.Queue = nil
	err = cfg.Validate()
	require.NoError(t, err)
	assert.Nil(t, cfg.Queue)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, defaultSyncConcurrency, cfg.Poller.SyncConcurrency)
	assert.Equal(t, defaultServerReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(4), cfg.Protocol.EpochsToUnlock)
	assert.Equal(t, int64(31536000), cfg.Protocol.SecondsPerYear)
}

func TestFactoriesConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		factories FactoriesConfig
		errMsg    string
	}{
		{
			name:   "empty",
			errMsg: "at least one factory",
		},
		{
			name:      "invalid id",
			factories: FactoriesConfig{{ID: "a.near", RPCOrigin: "https://rpc.mainnet.near.org"}},
			errMsg:    "invalid factory id",
		},
		{
			name: "duplicate id",
			factories: FactoriesConfig{
				{ID: "factory.near", RPCOrigin: "https://rpc.mainnet.near.org"},
				{ID: "factory.near", RPCOrigin: "https://rpc.testnet.near.org"},
			},
			errMsg: "duplicate factory id",
		},
		{
			name:      "origin without scheme",
			factories: FactoriesConfig{{ID: "factory.near", RPCOrigin: "rpc.mainnet.near.org"}},
			errMsg:    "invalid rpc-origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.factories.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("lookups", func(t *testing.T) {
		cfg := validConfig()
		assert.Equal(t, map[string]string{
			"factory.sudostake.near": "https://rpc.mainnet.near.org",
			"nzaza.testnet":          "https://rpc.testnet.near.org",
		}, cfg.Factories.RPCOrigins())
		assert.Equal(t, []string{"factory.sudostake.near", "nzaza.testnet"}, cfg.Factories.IDs())
	})
}

func TestProtocolConfig_Validate(t *testing.T) {
	cfg := &ProtocolConfig{EpochsToUnlock: -1, SecondsPerYear: 1}
	require.Error(t, cfg.Validate())

	cfg = &ProtocolConfig{EpochsToUnlock: 0, SecondsPerYear: 0}
	require.Error(t, cfg.Validate())

	cfg = &ProtocolConfig{EpochsToUnlock: 0, SecondsPerYear: 1}
	require.NoError(t, cfg.Validate())
}

func TestNew(t *testing.T) {
	const content = `
log-level: debug
db:
  username: root
  password: example
  address: "mongodb://localhost:27017"
  db-name: vault-indexer
near:
  timeout: 10s
  duration-unit: 1ns
factories:
  - id: factory.sudostake.near
    rpc-origin: https://rpc.mainnet.near.org
protocol:
  epochs-to-unlock: 6
poller:
  vault-sync-interval: 30s
server:
  host: 127.0.0.1
  port: 8080
metrics:
  host: 0.0.0.0
  port: 2112
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Near.Timeout)
	assert.Equal(t, time.Nanosecond, cfg.Near.DurationUnit)
	// defaults kept for keys absent from the file
	assert.Equal(t, uint(defaultNearMaxRetryTimes), cfg.Near.MaxRetryTimes)
	assert.Equal(t, int64(6), cfg.Protocol.EpochsToUnlock)
	assert.Equal(t, int64(31536000), cfg.Protocol.SecondsPerYear)
	require.Len(t, cfg.Factories, 1)
	assert.Equal(t, "factory.sudostake.near", cfg.Factories[0].ID)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Nil(t, cfg.Queue)

	t.Run("missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}
