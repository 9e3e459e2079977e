package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/sudostake/vault-indexer/internal/observability/metrics"
	"github.com/sudostake/vault-indexer/internal/utils/poller"
)

const vaultSyncPollerName = "vault-sync"

// StartVaultSyncPoller periodically re-syncs every vault known to the store.
func (s *Service) StartVaultSyncPoller(ctx context.Context) {
	vaultSyncPoller := poller.NewPoller(
		vaultSyncPollerName,
		s.cfg.Poller.VaultSyncInterval,
		metrics.RecordPollerDuration(vaultSyncPollerName, s.syncAllVaults),
	)
	go vaultSyncPoller.Start(ctx)
}

func (s *Service) syncAllVaults(ctx context.Context) error {
	var errs []error
	for _, factoryID := range s.cfg.Factories.IDs() {
		if err := s.syncFactoryVaults(ctx, factoryID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Service) syncFactoryVaults(ctx context.Context, factoryID string) error {
	log := log.Ctx(ctx)

	vaultIDs, err := s.db.FindAllVaultIDs(ctx, factoryID)
	if err != nil {
		return fmt.Errorf("failed to list vaults of factory %s: %w", factoryID, err)
	}

	var failed atomic.Int64
	p := pool.New().
		WithMaxGoroutines(s.cfg.Poller.SyncConcurrency).
		WithContext(ctx)
	for _, vaultID := range vaultIDs {
		p.Go(func(ctx context.Context) error {
			if _, err := s.SyncVault(ctx, factoryID, vaultID, nil); err != nil {
				failed.Add(1)
				log.Warn().
					Err(err).
					Str("factory", factoryID).
					Str("vault", vaultID).
					Msg("Failed to sync vault")
			}
			return nil
		})
	}
	// errors are counted above, a failing vault never cancels the others
	_ = p.Wait()

	log.Info().
		Str("factory", factoryID).
		Int("vaults", len(vaultIDs)).
		Int64("failed", failed.Load()).
		Msg("Vault sync completed")

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d vaults of factory %s failed to sync", n, len(vaultIDs), factoryID)
	}
	return nil
}
