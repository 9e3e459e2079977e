package consumer

import (
	"context"
	"time"

	"github.com/sudostake/vault-indexer/internal/types"
)

//go:generate mockery --name=EventConsumer --output=../tests/mocks --outpkg=mocks --filename=mock_event_consumer.go

// EventConsumer receives vault events produced by the indexer.
type EventConsumer interface {
	Start() error
	PushVaultStateChangedEvent(ctx context.Context, ev *VaultStateChangedEvent) error
	Stop() error
}

// VaultStateChangedEvent is emitted when a sync observes a different state label than the stored one.
// PreviousState is empty for vaults indexed for the first time.
type VaultStateChangedEvent struct {
	FactoryID     string           `json:"factory_id"`
	VaultID       string           `json:"vault_id"`
	Owner         string           `json:"owner"`
	PreviousState types.VaultState `json:"previous_state,omitempty"`
	NewState      types.VaultState `json:"new_state"`
	TxHash        *string          `json:"tx_hash,omitempty"`
	ObservedAt    time.Time        `json:"observed_at"`
}

// NoopConsumer drops every event, used when no queue is configured.
type NoopConsumer struct{}

func (NoopConsumer) Start() error { return nil }

func (NoopConsumer) PushVaultStateChangedEvent(context.Context, *VaultStateChangedEvent) error {
	return nil
}

func (NoopConsumer) Stop() error { return nil }
