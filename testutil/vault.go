package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/sudostake/vault-indexer/internal/db/model"
	"github.com/sudostake/vault-indexer/internal/types"
)

// RandomAccountID generates a named account id under the given top level account, e.g. "x7k2m.near"
func RandomAccountID(parent string) string {
	return gofakeit.Regex(`[a-z][a-z0-9]{4,11}`) + "." + parent
}

// RandomAmount generates a minimal unit amount with up to 28 digits
func RandomAmount() string {
	return gofakeit.Regex(`[1-9][0-9]{0,27}`)
}

// RandomVaultDocument generates a vault document of the given state under factoryID.
// Field invariants between state and optional fields hold for the generated document.
func RandomVaultDocument(factoryID string, state types.VaultState) *model.VaultDocument {
	record := types.VaultRecord{
		Owner: RandomAccountID("near"),
		State: state,
	}

	if state == types.VaultStatePending || state == types.VaultStateActive {
		record.LiquidityRequest = &types.LiquidityRequest{
			Token:      RandomAccountID("near"),
			Amount:     RandomAmount(),
			Interest:   RandomAmount(),
			Collateral: RandomAmount(),
			Duration:   int64(gofakeit.Number(3600, 365*24*3600)),
		}
	}

	if state == types.VaultStateActive {
		record.AcceptedOffer = &types.AcceptedOffer{
			Lender: RandomAccountID("near"),
			// mongo keeps millisecond precision
			AcceptedAt: gofakeit.Date().UTC().Truncate(time.Millisecond),
		}
	}

	txHash := gofakeit.Regex(`[1-9A-HJ-NP-Za-km-z]{44}`)
	vaultID := gofakeit.Regex(`vault-[0-9]{6,9}`) + "." + factoryID

	return model.NewVaultDocument(factoryID, vaultID, record, &txHash)
}
