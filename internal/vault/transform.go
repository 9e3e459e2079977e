package vault

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sudostake/vault-indexer/internal/types"
)

const nanosPerMilli = uint64(time.Millisecond)

type TransformOptions struct {
	// DurationUnit is the unit of RawLiquidityRequest.Duration, seconds when zero
	DurationUnit time.Duration
}

func (o TransformOptions) durationUnit() time.Duration {
	if o.DurationUnit <= 0 {
		return time.Second
	}
	return o.DurationUnit
}

// Transform converts the contract view into a VaultRecord.
// Owner and monetary fields are copied without validation, state is always recomputed.
func Transform(raw *RawVaultState, opts TransformOptions) types.VaultRecord {
	record := types.VaultRecord{
		Owner: raw.Owner,
	}

	if req := raw.LiquidityRequest; req != nil {
		record.LiquidityRequest = &types.LiquidityRequest{
			Token:      req.Token,
			Amount:     req.Amount,
			Interest:   req.Interest,
			Collateral: req.Collateral,
			Duration:   normalizeDuration(req.Duration.String(), opts.durationUnit()),
		}
	}

	if offer := raw.AcceptedOffer; offer != nil {
		record.AcceptedOffer = &types.AcceptedOffer{
			Lender:     offer.Lender,
			AcceptedAt: NanosToTime(uint64(offer.AcceptedAt)),
		}
	}

	if liq := raw.Liquidation; liq != nil {
		record.Liquidation = &types.Liquidation{
			Liquidated: liq.Liquidated,
		}
	}

	record.State = types.DeriveVaultState(
		record.LiquidityRequest != nil,
		record.AcceptedOffer != nil,
	)

	return record
}

// UnstakeEntries flattens the raw tuples, negative or corrupt epochs are handled by AnalyzeUnstakeEntry.
func UnstakeEntries(raw *RawVaultState) []types.UnstakeEntry {
	entries := make([]types.UnstakeEntry, 0, len(raw.UnstakeEntries))
	for _, e := range raw.UnstakeEntries {
		entries = append(entries, types.UnstakeEntry{
			Validator: e.Validator,
			Amount:    e.Amount,
			Epoch:     int64(e.EpochHeight),
		})
	}
	return entries
}

// NanosToTime truncates a nanosecond block timestamp to millisecond resolution.
func NanosToTime(nanos uint64) time.Time {
	return time.UnixMilli(int64(nanos / nanosPerMilli)).UTC()
}

// normalizeDuration converts value expressed in unit to whole seconds.
// Fractions are truncated and unparsable values become 0.
func normalizeDuration(value string, unit time.Duration) int64 {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0
	}

	if unit == time.Second {
		return d.Truncate(0).IntPart()
	}

	nanos := d.Mul(decimal.NewFromInt(int64(unit)))
	return nanos.Div(decimal.NewFromInt(int64(time.Second))).Truncate(0).IntPart()
}
