package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string          `mapstructure:"log-level"`
	Db        DbConfig        `mapstructure:"db"`
	Near      NearConfig      `mapstructure:"near"`
	Factories FactoriesConfig `mapstructure:"factories"`
	Protocol  ProtocolConfig  `mapstructure:"protocol"`
	Poller    PollerConfig    `mapstructure:"poller"`
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	// Queue is optional, vault events are not published when it's absent
	Queue *QueueConfig `mapstructure:"queue"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Near.Validate(); err != nil {
		return err
	}

	if err := cfg.Factories.Validate(); err != nil {
		return err
	}

	if err := cfg.Protocol.Validate(); err != nil {
		return err
	}

	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Values can be overridden with env variables, e.g. DB_PASSWORD for db.password
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	cfg := &Config{
		Near:     *DefaultNearConfig(),
		Protocol: *DefaultProtocolConfig(),
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
