package nearclient

import (
	"context"
	"errors"
	"time"

	"github.com/sudostake/vault-indexer/internal/observability/metrics"
	"github.com/sudostake/vault-indexer/internal/vault"
)

type nearClientWithMetrics struct {
	near NearInterface
}

func NewNearClientWithMetrics(near NearInterface) *nearClientWithMetrics {
	return &nearClientWithMetrics{near: near}
}

func (n *nearClientWithMetrics) GetVaultState(ctx context.Context, vaultID string) (*vault.RawVaultState, error) {
	return runNearClientMethodWithMetrics("GetVaultState", func() (*vault.RawVaultState, error) {
		return n.near.GetVaultState(ctx, vaultID)
	})
}

func (n *nearClientWithMetrics) GetEpochHeight(ctx context.Context) (int64, error) {
	return runNearClientMethodWithMetrics("GetEpochHeight", func() (int64, error) {
		return n.near.GetEpochHeight(ctx)
	})
}

func runNearClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	// unknown accounts are answered by the node, the call itself didn't fail
	failure := err != nil && !errors.Is(err, ErrUnknownAccount)
	metrics.RecordNearClientLatency(duration, method, failure)

	return result, err
}
