package vault

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudostake/vault-indexer/internal/types"
)

const vaultStateJSON = `{
	"owner": "alice.near",
	"index": 3,
	"version": 1,
	"state": "idle",
	"liquidity_request": {
		"token": "usdc.near",
		"amount": "1000000000",
		"interest": "100000000",
		"collateral": "5000000000000000000000000000",
		"duration": 2592000
	},
	"accepted_offer": {
		"lender": "bob.near",
		"accepted_at": 1718000000123456789
	},
	"liquidation": null,
	"active_validators": ["astro-stakers.poolv1.near"],
	"unstake_entries": [
		["aurora.pool.near", {"amount": "1000000000000000000000000", "epoch_height": 2104}],
		["astro-stakers.poolv1.near", {"amount": "5", "epoch_height": "2105"}]
	]
}`

func decodeRaw(t *testing.T, data string) *RawVaultState {
	var raw RawVaultState
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return &raw
}

func TestTransform(t *testing.T) {
	t.Run("full view", func(t *testing.T) {
		raw := decodeRaw(t, vaultStateJSON)
		record := Transform(raw, TransformOptions{})

		// raw state says idle but an accepted offer is present
		assert.Equal(t, types.VaultStateActive, record.State)
		assert.Equal(t, "alice.near", record.Owner)
		require.NotNil(t, record.LiquidityRequest)
		assert.Equal(t, types.LiquidityRequest{
			Token:      "usdc.near",
			Amount:     "1000000000",
			Interest:   "100000000",
			Collateral: "5000000000000000000000000000",
			Duration:   2592000,
		}, *record.LiquidityRequest)
		require.NotNil(t, record.AcceptedOffer)
		assert.Equal(t, "bob.near", record.AcceptedOffer.Lender)
		assert.Equal(t, time.UnixMilli(1718000000123).UTC(), record.AcceptedOffer.AcceptedAt)
		assert.Nil(t, record.Liquidation)
	})
	t.Run("idle", func(t *testing.T) {
		raw := &RawVaultState{Owner: "alice.near", State: "active"}
		record := Transform(raw, TransformOptions{})
		assert.Equal(t, types.VaultStateIdle, record.State)
		assert.Nil(t, record.LiquidityRequest)
		assert.Nil(t, record.AcceptedOffer)
	})
	t.Run("pending", func(t *testing.T) {
		raw := &RawVaultState{
			Owner: "alice.near",
			LiquidityRequest: &RawLiquidityRequest{
				Token:    "near",
				Amount:   "10",
				Interest: "1",
				Duration: json.Number("86400"),
			},
		}
		record := Transform(raw, TransformOptions{})
		assert.Equal(t, types.VaultStatePending, record.State)
	})
	t.Run("liquidation does not change state", func(t *testing.T) {
		raw := &RawVaultState{
			Owner:       "alice.near",
			Liquidation: &RawLiquidation{Liquidated: "42"},
		}
		record := Transform(raw, TransformOptions{})
		assert.Equal(t, types.VaultStateIdle, record.State)
		require.NotNil(t, record.Liquidation)
		assert.Equal(t, "42", record.Liquidation.Liquidated)
	})
	t.Run("nanosecond duration unit", func(t *testing.T) {
		raw := &RawVaultState{
			Owner: "alice.near",
			LiquidityRequest: &RawLiquidityRequest{
				Duration: json.Number("86400999999999"),
			},
		}
		record := Transform(raw, TransformOptions{DurationUnit: time.Nanosecond})
		assert.Equal(t, int64(86400), record.LiquidityRequest.Duration)
	})
	t.Run("malformed amounts pass through", func(t *testing.T) {
		raw := &RawVaultState{
			Owner: "alice.near",
			LiquidityRequest: &RawLiquidityRequest{
				Amount:   "-100",
				Interest: "abc",
				Duration: json.Number("-5"),
			},
		}
		record := Transform(raw, TransformOptions{})
		assert.Equal(t, "-100", record.LiquidityRequest.Amount)
		assert.Equal(t, "abc", record.LiquidityRequest.Interest)
		assert.Equal(t, int64(-5), record.LiquidityRequest.Duration)
	})
}

func TestUnstakeEntries(t *testing.T) {
	raw := decodeRaw(t, vaultStateJSON)

	entries := UnstakeEntries(raw)
	assert.Equal(t, []types.UnstakeEntry{
		{Validator: "aurora.pool.near", Amount: "1000000000000000000000000", Epoch: 2104},
		{Validator: "astro-stakers.poolv1.near", Amount: "5", Epoch: 2105},
	}, entries)
}

func TestRawUnstakeEntry_UnmarshalJSON(t *testing.T) {
	var entry RawUnstakeEntry
	err := json.Unmarshal([]byte(`["aurora.pool.near"]`), &entry)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"validator": "aurora.pool.near"}`), &entry)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`["aurora.pool.near", {"amount": "1", "epoch_height": -1}]`), &entry)
	require.Error(t, err)
}

func TestNanosToTime(t *testing.T) {
	// truncated, not rounded
	assert.Equal(t, time.UnixMilli(1).UTC(), NanosToTime(1_999_999))
	assert.Equal(t, time.UnixMilli(0).UTC(), NanosToTime(999_999))
}
