package vault

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/sudostake/vault-indexer/internal/types"
)

func TestCalculateAPR(t *testing.T) {
	year := decimal.NewFromInt(DefaultSecondsPerYear)

	t.Run("ten percent over a year", func(t *testing.T) {
		apr := CalculateAPR("100", "1000", year, DefaultSecondsPerYear)
		assert.True(t, apr.Equal(decimal.RequireFromString("0.1")), apr.String())
	})
	t.Run("zero principal", func(t *testing.T) {
		assert.True(t, CalculateAPR("100", "0", year, DefaultSecondsPerYear).IsZero())
	})
	t.Run("negative principal", func(t *testing.T) {
		assert.True(t, CalculateAPR("100", "-5", year, DefaultSecondsPerYear).IsZero())
	})
	t.Run("malformed interest", func(t *testing.T) {
		assert.True(t, CalculateAPR("1e", "1000", year, DefaultSecondsPerYear).IsZero())
	})
	t.Run("malformed principal", func(t *testing.T) {
		assert.True(t, CalculateAPR("100", "ten", year, DefaultSecondsPerYear).IsZero())
	})
	t.Run("zero duration is clamped to one second", func(t *testing.T) {
		apr := CalculateAPR("1", "1", decimal.Zero, DefaultSecondsPerYear)
		assert.True(t, apr.Equal(decimal.NewFromInt(DefaultSecondsPerYear)), apr.String())
	})
	t.Run("fractional duration is floored", func(t *testing.T) {
		floored := CalculateAPR("3", "100", decimal.RequireFromString("86400.9"), DefaultSecondsPerYear)
		exact := CalculateAPR("3", "100", decimal.NewFromInt(86400), DefaultSecondsPerYear)
		assert.True(t, floored.Equal(exact))
	})
	t.Run("yocto amounts keep precision", func(t *testing.T) {
		// 1000 NEAR principal, 50 NEAR interest, 365 days
		apr := CalculateAPR(
			"50000000000000000000000000",
			"1000000000000000000000000000",
			year,
			DefaultSecondsPerYear,
		)
		assert.True(t, apr.Equal(decimal.RequireFromString("0.05")), apr.String())
	})
	t.Run("proportional to interest", func(t *testing.T) {
		// 73 days is a fifth of a year
		duration := decimal.NewFromInt(73 * 24 * 60 * 60)
		single := CalculateAPR("7", "400", duration, DefaultSecondsPerYear)
		double := CalculateAPR("14", "400", duration, DefaultSecondsPerYear)
		assert.True(t, double.Equal(single.Mul(decimal.NewFromInt(2))), "%s vs %s", double, single)
	})
}

func TestLiquidityRequestAPR(t *testing.T) {
	assert.True(t, LiquidityRequestAPR(nil, DefaultSecondsPerYear).IsZero())

	req := &types.LiquidityRequest{
		Token:      "usdc.near",
		Amount:     "1000000000",
		Interest:   "50000000",
		Collateral: "5000000000000000000000000000",
		Duration:   DefaultSecondsPerYear / 2,
	}
	apr := LiquidityRequestAPR(req, DefaultSecondsPerYear)
	assert.True(t, apr.Equal(decimal.RequireFromString("0.1")), apr.String())
}
