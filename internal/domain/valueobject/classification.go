// Package valueobject contains domain value objects for the BankFlow system.
package valueobject

import "github.com/shopspring/decimal"

// Classification is the fiscal category derived from a statement line's
// description. It is computed fresh per line and never mutated.
type Classification struct {
	Category           string
	VATRate            decimal.Decimal
	WithholdingRate    decimal.Decimal
	IsInternalTransfer bool
	IsBankFee          bool
	IsBulkRemittance   bool
}

// TaxBreakdown is the per-line tax decomposition produced by the tax
// calculator. Withholding carries the opposite sign of the tax base, so
// the components re-sum to the rounded line amount.
type TaxBreakdown struct {
	Category    string
	Commission  decimal.Decimal
	VAT         decimal.Decimal
	Withholding decimal.Decimal
	NetAmount   decimal.Decimal
}
