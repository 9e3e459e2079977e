package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sudostake/vault-indexer/consumer"
	"github.com/sudostake/vault-indexer/internal/clients/nearclient"
	"github.com/sudostake/vault-indexer/internal/config"
	"github.com/sudostake/vault-indexer/internal/db"
	"github.com/sudostake/vault-indexer/internal/queue"
	"github.com/sudostake/vault-indexer/internal/services"
	"github.com/sudostake/vault-indexer/pkg"
)

const (
	defaultConfigFileName = "config.yml"
	// configPathEnv overrides the default of the --config flag
	configPathEnv = "VAULT_INDEXER_CONFIG"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:           "vault-indexer",
		Short:         "Indexes sudostake vaults and serves them by owner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := pkg.Getenv(configPathEnv, getDefaultConfigFile(homePath, defaultConfigFileName))

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(IndexVaultCmd())
	rootCmd.AddCommand(InspectVaultCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}

// loadConfig reads the config file and applies its log level.
func loadConfig() (*config.Config, error) {
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		level, err = zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log-level %q: %w", cfg.LogLevel, err)
		}
	}
	zerolog.SetGlobalLevel(level)

	return cfg, nil
}

// newNearClients creates one rpc client per whitelisted factory.
func newNearClients(cfg *config.Config) map[string]nearclient.NearInterface {
	clients := make(map[string]nearclient.NearInterface, len(cfg.Factories))
	for factoryID, rpcOrigin := range cfg.Factories.RPCOrigins() {
		clients[factoryID] = nearclient.NewNearClientWithMetrics(
			nearclient.NewNearClient(rpcOrigin, &cfg.Near),
		)
	}
	return clients
}

// newService wires the service used by every command. The returned cleanup releases the
// database connection and the event consumer.
func newService(ctx context.Context, cfg *config.Config) (*services.Service, func(), error) {
	database, err := db.New(ctx, cfg.Db)
	if err != nil {
		return nil, nil, fmt.Errorf("error while creating db client: %w", err)
	}

	var eventConsumer consumer.EventConsumer
	eventConsumer, err = queue.NewEventConsumer(cfg.Queue)
	if err != nil {
		_ = database.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to initialize event consumer: %w", err)
	}
	if err := eventConsumer.Start(); err != nil {
		_ = database.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to start event consumer: %w", err)
	}

	cleanup := func() {
		if err := eventConsumer.Stop(); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("error while stopping event consumer")
		}
		if err := database.Disconnect(context.WithoutCancel(ctx)); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("error while disconnecting db client")
		}
	}

	service := services.NewService(
		cfg,
		db.NewDbWithMetrics(database),
		newNearClients(cfg),
		eventConsumer,
	)

	return service, cleanup, nil
}
