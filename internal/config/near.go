package config

import (
	"fmt"
	"time"
)

const (
	defaultNearTimeout       = 20 * time.Second
	defaultNearMaxRetryTimes = 3
	defaultNearRetryInterval = 500 * time.Millisecond
)

// NearConfig holds settings shared by the json-rpc clients of every whitelisted factory.
type NearConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
	// DurationUnit is the unit of liquidity request durations reported by the vault contract
	DurationUnit time.Duration `mapstructure:"duration-unit"`
}

func DefaultNearConfig() *NearConfig {
	return &NearConfig{
		Timeout:       defaultNearTimeout,
		MaxRetryTimes: defaultNearMaxRetryTimes,
		RetryInterval: defaultNearRetryInterval,
		DurationUnit:  time.Second,
	}
}

func (cfg *NearConfig) Validate() error {
	if cfg.Timeout <= 0 {
		return fmt.Errorf("near timeout must be positive")
	}

	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("near max-retry-times must be positive")
	}

	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("near retry-interval must be positive")
	}

	if cfg.DurationUnit <= 0 {
		cfg.DurationUnit = time.Second
	}

	return nil
}
