package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultServerReadTimeout  = 5 * time.Second
	defaultServerWriteTimeout = 30 * time.Second
	defaultServerIdleTimeout  = 60 * time.Second
)

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle-timeout"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", cfg.Port)
	}

	if cfg.Port == 0 {
		return errors.New("server port is required")
	}

	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultServerReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultServerWriteTimeout
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultServerIdleTimeout
	}

	return nil
}

func (cfg *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
