package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sudostake/vault-indexer/consumer"
	"github.com/sudostake/vault-indexer/internal/clients/nearclient"
	"github.com/sudostake/vault-indexer/internal/db"
	"github.com/sudostake/vault-indexer/internal/db/model"
	"github.com/sudostake/vault-indexer/internal/observability/metrics"
	"github.com/sudostake/vault-indexer/internal/types"
	"github.com/sudostake/vault-indexer/internal/vault"
	"github.com/sudostake/vault-indexer/pkg"
)

// SyncVault reads the current state of vaultID from chain and stores it under factoryID.
// txHash is the minting transaction, when nil the hash already stored (if any) is kept.
func (s *Service) SyncVault(
	ctx context.Context, factoryID, vaultID string, txHash *string,
) (doc *model.VaultDocument, err error) {
	near, err := s.factoryClient(factoryID)
	if err != nil {
		return nil, err
	}

	defer func() {
		metrics.RecordVaultSync(factoryID, err != nil)
	}()

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

	existing, err := s.db.GetVault(ctx, factoryID, vaultID)
	if err != nil && !db.IsNotFoundError(err) {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to get vault %s: %w", vaultID, err),
		)
	}

	if txHash == nil && existing != nil {
		txHash = existing.TxHash
	}

	doc = model.NewVaultDocument(factoryID, vaultID, record, txHash)
	if err := s.db.UpsertVault(ctx, factoryID, doc); err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to upsert vault %s: %w", vaultID, err),
		)
	}

	var previousState types.VaultState
	if existing != nil {
		previousState = existing.State
	}

	if previousState != record.State {
		s.emitStateChanged(ctx, doc, previousState)
	}

	log.Ctx(ctx).Debug().
		Str("factory", factoryID).
		Str("vault", vaultID).
		Str("state", record.State.String()).
		Msg("Vault synced")

	return doc, nil
}

// emitStateChanged records the transition and pushes the event.
// The document is already stored, a failed push is logged and does not fail the sync.
func (s *Service) emitStateChanged(ctx context.Context, doc *model.VaultDocument, previousState types.VaultState) {
	from := previousState.String()
	if from == "" {
		from = "none"
	}
	metrics.RecordVaultStateTransition(doc.FactoryID, from, doc.State.String())

	ev := &consumer.VaultStateChangedEvent{
		FactoryID:     doc.FactoryID,
		VaultID:       doc.ID,
		Owner:         doc.Owner,
		PreviousState: previousState,
		NewState:      doc.State,
		TxHash:        doc.TxHash,
		ObservedAt:    time.Now().UTC(),
	}
	if err := s.eventConsumer.PushVaultStateChangedEvent(ctx, ev); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("vault", doc.ID).
			Msg("Failed to push vault state changed event")
	}
}

// validateVaultID requires a valid account id minted as a sub-account of the factory.
func validateVaultID(factoryID, vaultID string) error {
	if !pkg.IsValidAccountID(vaultID) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest,
			fmt.Sprintf("invalid vault id %q", vaultID),
		)
	}

	if !strings.HasSuffix(vaultID, "."+factoryID) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest,
			fmt.Sprintf("vault %s was not minted by factory %s", vaultID, factoryID),
		)
	}

	return nil
}

func vaultStateError(vaultID string, err error) *types.Error {
	if errors.Is(err, nearclient.ErrUnknownAccount) {
		return types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound,
			fmt.Sprintf("vault %s does not exist", vaultID),
		)
	}
	return types.NewError(
		http.StatusBadGateway, types.BadGateway,
		fmt.Errorf("failed to fetch state of vault %s: %w", vaultID, err),
	)
}

func invalidVaultStateError(vaultID string, err error) *types.Error {
	return types.NewError(
		http.StatusUnprocessableEntity, types.UnprocessableEntity,
		fmt.Errorf("vault %s has invalid state: %w", vaultID, err),
	)
}
