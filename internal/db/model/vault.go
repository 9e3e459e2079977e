package model

import (
	"time"

	"github.com/sudostake/vault-indexer/internal/types"
)

const vaultCollectionPrefix = "vaults_"

// VaultCollection returns the collection holding vaults minted by factoryID.
// Factory ids keep their dots so distinct ids never map to the same collection.
func VaultCollection(factoryID string) string {
	return vaultCollectionPrefix + factoryID
}

type VaultDocument struct {
	// ID is the vault account id
	ID                string `bson:"_id" json:"id"`
	types.VaultRecord `bson:",inline"`
	FactoryID         string    `bson:"factory_id" json:"factory_id"`
	TxHash            *string   `bson:"tx_hash" json:"tx_hash"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

func NewVaultDocument(factoryID, vaultID string, record types.VaultRecord, txHash *string) *VaultDocument {
	return &VaultDocument{
		ID:          vaultID,
		VaultRecord: record,
		FactoryID:   factoryID,
		TxHash:      txHash,
	}
}
