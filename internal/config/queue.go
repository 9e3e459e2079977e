package config

import (
	"errors"
	"time"
)

const defaultPublishTimeout = 5 * time.Second

type QueueConfig struct {
	URL            string        `mapstructure:"url"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Exchange       string        `mapstructure:"exchange"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return errors.New("queue url is required")
	}

	if cfg.User == "" || cfg.Password == "" {
		return errors.New("queue credentials are required")
	}

	if cfg.Exchange == "" {
		return errors.New("queue exchange is required")
	}

	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultPublishTimeout
	}

	return nil
}
