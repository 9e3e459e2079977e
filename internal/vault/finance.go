package vault

import (
	"github.com/shopspring/decimal"
	"github.com/sudostake/vault-indexer/internal/types"
)

const DefaultSecondsPerYear int64 = 365 * 24 * 60 * 60

// aprPrecision is the number of decimal places kept by the final division
const aprPrecision = 24

// CalculateAPR annualizes interest paid on principal over durationSeconds.
// It is a display helper: non positive principal or malformed amounts yield zero.
func CalculateAPR(interest, principal string, durationSeconds decimal.Decimal, secondsPerYear int64) decimal.Decimal {
	p, err := decimal.NewFromString(principal)
	if err != nil || !p.IsPositive() {
		return decimal.Zero
	}

	i, err := decimal.NewFromString(interest)
	if err != nil {
		return decimal.Zero
	}

	duration := durationSeconds.Floor()
	if duration.LessThan(decimal.NewFromInt(1)) {
		duration = decimal.NewFromInt(1)
	}

	numerator := i.Mul(decimal.NewFromInt(secondsPerYear))
	denominator := p.Mul(duration)

	return numerator.DivRound(denominator, aprPrecision)
}

// LiquidityRequestAPR returns the APR offered by req, zero when there is no request.
func LiquidityRequestAPR(req *types.LiquidityRequest, secondsPerYear int64) decimal.Decimal {
	if req == nil {
		return decimal.Zero
	}
	return CalculateAPR(req.Interest, req.Amount, decimal.NewFromInt(req.Duration), secondsPerYear)
}
