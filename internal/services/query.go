package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sudostake/vault-indexer/internal/types"
)

// GetVaultIDsByOwner returns the ids of every vault of owner indexed under factoryID.
func (s *Service) GetVaultIDsByOwner(ctx context.Context, factoryID, owner string) ([]string, error) {
	if owner == "" || factoryID == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "owner and factory_id are required",
		)
	}

	if !s.isWhitelisted(factoryID) {
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.Forbidden,
			fmt.Sprintf("factory %s is not whitelisted", factoryID),
		)
	}

	ids, err := s.db.FindVaultIDsByOwner(ctx, factoryID, owner)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("factory", factoryID).
			Str("owner", owner).
			Msg("Failed to find vaults by owner")
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to find vaults of %s: %w", owner, err))
	}

	return ids, nil
}
