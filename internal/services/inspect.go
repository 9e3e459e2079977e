package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sudostake/vault-indexer/internal/db"
	"github.com/sudostake/vault-indexer/internal/db/model"
	"github.com/sudostake/vault-indexer/internal/types"
	"github.com/sudostake/vault-indexer/internal/vault"
)

// VaultInspection is the live view of a vault with the values derived at read time.
type VaultInspection struct {
	FactoryID string `json:"factory_id"`
	VaultID   string `json:"vault_id"`
	types.VaultRecord
	// APR is set only while a liquidity request is open or accepted
	APR              *decimal.Decimal             `json:"apr,omitempty"`
	CurrentEpoch     *int64                       `json:"current_epoch"`
	ActiveValidators []string                     `json:"active_validators"`
	UnstakeEntries   []vault.UnstakeEntryAnalysis `json:"unstake_entries"`
	// Indexed is the stored document, nil when the vault was never indexed
	Indexed *model.VaultDocument `json:"indexed,omitempty"`
}

func (s *Service) InspectVault(ctx context.Context, factoryID, vaultID string) (*VaultInspection, error) {
	near, err := s.factoryClient(factoryID)
	if err != nil {
		return nil, err
	}

	if err := validateVaultID(factoryID, vaultID); err != nil {
		return nil, err
	}

	raw, err := near.GetVaultState(ctx, vaultID)
	if err != nil {
		return nil, vaultStateError(vaultID, err)
	}

	if err := validateRawVaultState(raw); err != nil {
		return nil, invalidVaultStateError(vaultID, err)
	}

	record := vault.Transform(raw, vault.TransformOptions{
		DurationUnit: s.cfg.Near.DurationUnit,
	})

	// maturity is still reported without the current epoch, every entry is then unbonding
	var currentEpoch *int64
	if epoch, err := near.GetEpochHeight(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Failed to get current epoch height")
	} else {
		currentEpoch = &epoch
	}

	inspection := &VaultInspection{
		FactoryID:        factoryID,
		VaultID:          vaultID,
		VaultRecord:      record,
		CurrentEpoch:     currentEpoch,
		ActiveValidators: raw.ActiveValidators,
		UnstakeEntries: vault.AnalyzeUnstakeEntries(
			vault.UnstakeEntries(raw), currentEpoch, s.cfg.Protocol.EpochsToUnlock,
		),
	}

	if record.LiquidityRequest != nil {
		apr := vault.LiquidityRequestAPR(record.LiquidityRequest, s.cfg.Protocol.SecondsPerYear)
		inspection.APR = &apr
	}

	indexed, err := s.db.GetVault(ctx, factoryID, vaultID)
	switch {
	case err == nil:
		inspection.Indexed = indexed
	case !db.IsNotFoundError(err):
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to get vault %s: %w", vaultID, err))
	}

	return inspection, nil
}
