package config

import (
	"errors"

	"github.com/sudostake/vault-indexer/internal/vault"
)

type ProtocolConfig struct {
	EpochsToUnlock int64 `mapstructure:"epochs-to-unlock"`
	SecondsPerYear int64 `mapstructure:"seconds-per-year"`
}

func DefaultProtocolConfig() *ProtocolConfig {
	return &ProtocolConfig{
		EpochsToUnlock: vault.DefaultEpochsToUnlock,
		SecondsPerYear: vault.DefaultSecondsPerYear,
	}
}

func (cfg *ProtocolConfig) Validate() error {
	if cfg.EpochsToUnlock < 0 {
		return errors.New("epochs-to-unlock must not be negative")
	}

	if cfg.SecondsPerYear <= 0 {
		return errors.New("seconds-per-year must be positive")
	}

	return nil
}
