package vault

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RawVaultState is the json returned by the vault contract's get_vault_state view.
type RawVaultState struct {
	Owner string `json:"owner"`
	Index uint64 `json:"index"`
	// State is reported by some contract versions, it is never trusted
	State            string               `json:"state,omitempty"`
	LiquidityRequest *RawLiquidityRequest `json:"liquidity_request"`
	AcceptedOffer    *RawAcceptedOffer    `json:"accepted_offer"`
	Liquidation      *RawLiquidation      `json:"liquidation"`
	ActiveValidators []string             `json:"active_validators"`
	UnstakeEntries   []RawUnstakeEntry    `json:"unstake_entries"`
}

type RawLiquidityRequest struct {
	Token      string `json:"token"`
	Amount     string `json:"amount"`
	Interest   string `json:"interest"`
	Collateral string `json:"collateral"`
	// Duration is expressed in the contract's duration unit
	Duration json.Number `json:"duration"`
}

type RawAcceptedOffer struct {
	Lender string `json:"lender"`
	// AcceptedAt is the block timestamp in nanoseconds
	AcceptedAt U64 `json:"accepted_at"`
}

type RawLiquidation struct {
	Liquidated string `json:"liquidated"`
}

type RawUnstakeEntry struct {
	Validator   string
	Amount      string
	EpochHeight U64
}

// UnmarshalJSON decodes the (validator, entry) tuple the contract serializes.
func (e *RawUnstakeEntry) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("unstake entry is not a tuple: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("unstake entry tuple must have 2 elements, got %d", len(tuple))
	}

	if err := json.Unmarshal(tuple[0], &e.Validator); err != nil {
		return fmt.Errorf("invalid unstake entry validator: %w", err)
	}

	var entry struct {
		Amount      string `json:"amount"`
		EpochHeight U64    `json:"epoch_height"`
	}
	if err := json.Unmarshal(tuple[1], &entry); err != nil {
		return fmt.Errorf("invalid unstake entry for %s: %w", e.Validator, err)
	}
	e.Amount = entry.Amount
	e.EpochHeight = entry.EpochHeight

	return nil
}

func (e RawUnstakeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		e.Validator,
		map[string]any{
			"amount":       e.Amount,
			"epoch_height": e.EpochHeight,
		},
	})
}

// U64 accepts both json numbers and quoted decimal strings.
type U64 uint64

func (u *U64) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %q: %w", data, err)
	}
	*u = U64(v)
	return nil
}

func (u U64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(u), 10)), nil
}
