// Package valueobject contains domain value objects for the BankFlow system.
package valueobject

import "github.com/shopspring/decimal"

// MatchingConfig contains the tolerances for remittance-to-detail
// matching and the fixed commission policy.
type MatchingConfig struct {
	// SumTolerance is the maximum absolute difference allowed between an
	// aggregate remittance amount and the sum of its detail rows. The
	// same tolerance drives the rounding-delta reconciliation in the tax
	// calculator.
	SumTolerance decimal.Decimal // 0.02 = 2 cents

	// DateWindowDays is the half-width of the date window used to select
	// candidate detail rows around the aggregate line's date.
	DateWindowDays int // 1 = ±1 day

	// FixedCommission is the flat fee applied to negative, non-remittance,
	// non-fee lines. Never positive.
	FixedCommission decimal.Decimal // -1.00
}

// DefaultMatchingConfig returns the default matching configuration.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		SumTolerance:    decimal.NewFromFloat(0.02),
		DateWindowDays:  1,
		FixedCommission: decimal.NewFromInt(-1),
	}
}

// IsWithinTolerance checks if the detail sum matches the aggregate
// target within the configured tolerance.
func (c MatchingConfig) IsWithinTolerance(target, detailSum decimal.Decimal) bool {
	return target.Sub(detailSum).Abs().LessThanOrEqual(c.SumTolerance)
}
