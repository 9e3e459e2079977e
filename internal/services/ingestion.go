package services

import (
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"

	"github.com/sudostake/vault-indexer/internal/vault"
	"github.com/sudostake/vault-indexer/pkg"
)

// validateRawVaultState checks every identity and monetary field before the state is transformed.
// Transform itself trusts its input.
func validateRawVaultState(raw *vault.RawVaultState) error {
	if !pkg.IsValidAccountID(raw.Owner) {
		return fmt.Errorf("invalid owner %q", raw.Owner)
	}

	if req := raw.LiquidityRequest; req != nil {
		if req.Token == "" {
			return fmt.Errorf("liquidity request token is empty")
		}
		for name, amount := range map[string]string{
			"amount":     req.Amount,
			"interest":   req.Interest,
			"collateral": req.Collateral,
		} {
			if err := validateAmount(amount); err != nil {
				return fmt.Errorf("invalid liquidity request %s: %w", name, err)
			}
		}
		if _, err := strconv.ParseUint(req.Duration.String(), 10, 64); err != nil {
			return fmt.Errorf("invalid liquidity request duration %q", req.Duration)
		}
	}

	if offer := raw.AcceptedOffer; offer != nil {
		if !pkg.IsValidAccountID(offer.Lender) {
			return fmt.Errorf("invalid lender %q", offer.Lender)
		}
	}

	if liq := raw.Liquidation; liq != nil {
		if err := validateAmount(liq.Liquidated); err != nil {
			return fmt.Errorf("invalid liquidated amount: %w", err)
		}
	}

	for _, validator := range raw.ActiveValidators {
		if !pkg.IsValidAccountID(validator) {
			return fmt.Errorf("invalid active validator %q", validator)
		}
	}

	for _, entry := range raw.UnstakeEntries {
		if !pkg.IsValidAccountID(entry.Validator) {
			return fmt.Errorf("invalid unstake entry validator %q", entry.Validator)
		}
		if err := validateAmount(entry.Amount); err != nil {
			return fmt.Errorf("invalid unstake entry amount for %s: %w", entry.Validator, err)
		}
	}

	return nil
}

// validateAmount accepts non negative minimal-unit integers only.
func validateAmount(amount string) error {
	v, ok := sdkmath.NewIntFromString(amount)
	if !ok {
		return fmt.Errorf("%q is not an integer", amount)
	}
	if v.IsNegative() {
		return fmt.Errorf("%q is negative", amount)
	}
	return nil
}
