package db

import (
	"context"

	"github.com/sudostake/vault-indexer/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// GetVault returns *NotFoundError if the vault was never indexed under factoryID
	GetVault(ctx context.Context, factoryID, vaultID string) (*model.VaultDocument, error)
	// UpsertVault writes the whole document, created_at is only set on insert
	UpsertVault(ctx context.Context, factoryID string, doc *model.VaultDocument) error
	FindVaultIDsByOwner(ctx context.Context, factoryID, owner string) ([]string, error)
	FindAllVaultIDs(ctx context.Context, factoryID string) ([]string, error)
}
