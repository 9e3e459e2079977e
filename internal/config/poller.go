package config

import (
	"errors"
	"time"
)

const defaultSyncConcurrency = 8

type PollerConfig struct {
	VaultSyncInterval time.Duration `mapstructure:"vault-sync-interval"`
	SyncConcurrency   int           `mapstructure:"sync-concurrency"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.VaultSyncInterval <= 0 {
		return errors.New("vault-sync-interval must be positive")
	}

	if cfg.SyncConcurrency < 0 {
		return errors.New("sync-concurrency must not be negative")
	}

	if cfg.SyncConcurrency == 0 {
		cfg.SyncConcurrency = defaultSyncConcurrency
	}

	return nil
}
