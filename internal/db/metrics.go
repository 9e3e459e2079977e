package db

import (
	"context"
	"time"

	"github.com/sudostake/vault-indexer/internal/db/model"
	"github.com/sudostake/vault-indexer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.run("Ping", func() error {
		return d.db.Ping(ctx)
	})
}

func (d *DbWithMetrics) GetVault(ctx context.Context, factoryID, vaultID string) (result *model.VaultDocument, err error) {
	//nolint:errcheck
	d.run("GetVault", func() error {
		result, err = d.db.GetVault(ctx, factoryID, vaultID)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertVault(ctx context.Context, factoryID string, doc *model.VaultDocument) error {
	return d.run("UpsertVault", func() error {
		return d.db.UpsertVault(ctx, factoryID, doc)
	})
}

func (d *DbWithMetrics) FindVaultIDsByOwner(ctx context.Context, factoryID, owner string) (result []string, err error) {
	//nolint:errcheck
	d.run("FindVaultIDsByOwner", func() error {
		result, err = d.db.FindVaultIDsByOwner(ctx, factoryID, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) FindAllVaultIDs(ctx context.Context, factoryID string) (result []string, err error) {
	//nolint:errcheck
	d.run("FindAllVaultIDs", func() error {
		result, err = d.db.FindAllVaultIDs(ctx, factoryID)
		return err
	})
	return
}

// run executes f and records its latency with the method name and whether it failed.
// Not found is a regular outcome and is not reported as a failure
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil && !IsNotFoundError(err))
	return err
}
