package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sudostake/vault-indexer/consumer"
	"github.com/sudostake/vault-indexer/internal/clients/nearclient"
	"github.com/sudostake/vault-indexer/internal/config"
	"github.com/sudostake/vault-indexer/internal/db"
	"github.com/sudostake/vault-indexer/internal/types"
)

type Service struct {
	cfg *config.Config
	db  db.DbInterface
	// near holds one client per whitelisted factory, keyed by factory id
	near          map[string]nearclient.NearInterface
	eventConsumer consumer.EventConsumer
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	near map[string]nearclient.NearInterface,
	eventConsumer consumer.EventConsumer,
) *Service {
	return &Service{
		cfg:           cfg,
		db:            db,
		near:          near,
		eventConsumer: eventConsumer,
	}
}

func (s *Service) StartIndexerSync(ctx context.Context) {
	s.StartVaultSyncPoller(ctx)
}

// Healthcheck reports whether the document store is reachable.
func (s *Service) Healthcheck(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to ping database: %w", err))
	}
	return nil
}

// factoryClient returns the rpc client of a whitelisted factory. Unlisted factories are
// rejected before any storage or network access.
func (s *Service) factoryClient(factoryID string) (nearclient.NearInterface, error) {
	near, ok := s.near[factoryID]
	if !ok {
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.Forbidden,
			fmt.Sprintf("factory %s is not whitelisted", factoryID),
		)
	}
	return near, nil
}

func (s *Service) isWhitelisted(factoryID string) bool {
	_, ok := s.near[factoryID]
	return ok
}
