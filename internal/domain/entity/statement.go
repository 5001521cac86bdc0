// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// StatementLine represents a single bank statement movement as delivered
// by the upstream file reader: date, free-text description and a
// sign-resolved amount (negative = debit).
type StatementLine struct {
	Date        string
	Description string
	Amount      decimal.Decimal
}

// RemittanceDetail represents one normalized row of the remittance detail
// table. Date may be empty when the source table carries no date column.
type RemittanceDetail struct {
	Date        string
	Payee       string
	Description string
	Amount      decimal.Decimal
}

// ProcessedLine is a statement line after fiscal classification and tax
// breakdown, ready for output. Amounts are rounded to 2 decimals.
type ProcessedLine struct {
	Date        string
	Description string
	Category    string
	Amount      decimal.Decimal
	Commission  decimal.Decimal
	VAT         decimal.Decimal
	Withholding decimal.Decimal
	NetAmount   decimal.Decimal
}
