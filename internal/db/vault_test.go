//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudostake/vault-indexer/internal/db"
	"github.com/sudostake/vault-indexer/internal/types"
	"github.com/sudostake/vault-indexer/testutil"
)

func TestVault(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	factoryID := testFactories[0]

	t.Run("get not found", func(t *testing.T) {
		doc, err := testDB.GetVault(ctx, factoryID, "vault-0."+factoryID)
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, doc)
	})
	t.Run("nil document", func(t *testing.T) {
		err := testDB.UpsertVault(ctx, factoryID, nil)
		require.Error(t, err)
	})
	t.Run("upsert sets timestamps", func(t *testing.T) {
		doc := testutil.RandomVaultDocument(factoryID, types.VaultStateActive)
		err := testDB.UpsertVault(ctx, factoryID, doc)
		require.NoError(t, err)

		created, err := testDB.GetVault(ctx, factoryID, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.VaultRecord, created.VaultRecord)
		assert.Equal(t, factoryID, created.FactoryID)
		assert.Equal(t, doc.TxHash, created.TxHash)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		// vault got repaid: request and offer are gone
		time.Sleep(5 * time.Millisecond)
		doc.LiquidityRequest = nil
		doc.AcceptedOffer = nil
		doc.State = types.VaultStateIdle
		err = testDB.UpsertVault(ctx, factoryID, doc)
		require.NoError(t, err)

		updated, err := testDB.GetVault(ctx, factoryID, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, types.VaultStateIdle, updated.State)
		assert.Nil(t, updated.LiquidityRequest)
		assert.Nil(t, updated.AcceptedOffer)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})
	t.Run("null tx hash", func(t *testing.T) {
		doc := testutil.RandomVaultDocument(factoryID, types.VaultStateIdle)
		doc.TxHash = nil
		err := testDB.UpsertVault(ctx, factoryID, doc)
		require.NoError(t, err)

		found, err := testDB.GetVault(ctx, factoryID, doc.ID)
		require.NoError(t, err)
		assert.Nil(t, found.TxHash)
	})
}

func TestFindVaultIDs(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	factoryID := testFactories[0]
	otherFactoryID := testFactories[1]
	owner := testutil.RandomAccountID("near")

	var ownedIDs []string
	for _, state := range []types.VaultState{types.VaultStateIdle, types.VaultStatePending, types.VaultStateActive} {
		doc := testutil.RandomVaultDocument(factoryID, state)
		doc.Owner = owner
		require.NoError(t, testDB.UpsertVault(ctx, factoryID, doc))
		ownedIDs = append(ownedIDs, doc.ID)
	}

	// same owner, other factory
	foreign := testutil.RandomVaultDocument(otherFactoryID, types.VaultStateIdle)
	foreign.Owner = owner
	require.NoError(t, testDB.UpsertVault(ctx, otherFactoryID, foreign))

	// other owner, same factory
	unrelated := testutil.RandomVaultDocument(factoryID, types.VaultStatePending)
	require.NoError(t, testDB.UpsertVault(ctx, factoryID, unrelated))

	t.Run("by owner", func(t *testing.T) {
		ids, err := testDB.FindVaultIDsByOwner(ctx, factoryID, owner)
		require.NoError(t, err)
		assert.ElementsMatch(t, ownedIDs, ids)
	})
	t.Run("by owner in other factory", func(t *testing.T) {
		ids, err := testDB.FindVaultIDsByOwner(ctx, otherFactoryID, owner)
		require.NoError(t, err)
		assert.Equal(t, []string{foreign.ID}, ids)
	})
	t.Run("unknown owner", func(t *testing.T) {
		ids, err := testDB.FindVaultIDsByOwner(ctx, factoryID, "nobody.near")
		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NotNil(t, ids)
	})
	t.Run("all", func(t *testing.T) {
		ids, err := testDB.FindAllVaultIDs(ctx, factoryID)
		require.NoError(t, err)
		assert.ElementsMatch(t, append(ownedIDs, unrelated.ID), ids)
	})
}
