package nearclient

import (
	"context"

	"github.com/sudostake/vault-indexer/internal/vault"
)

//go:generate mockery --name=NearInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_near_client.go
type NearInterface interface {
	// GetVaultState calls the get_vault_state view of vaultID, ErrUnknownAccount is returned for missing accounts
	GetVaultState(ctx context.Context, vaultID string) (*vault.RawVaultState, error)
	GetEpochHeight(ctx context.Context) (int64, error)
}
