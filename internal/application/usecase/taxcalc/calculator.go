// Package taxcalc contains the per-line tax breakdown calculator.
package taxcalc

import (
	"github.com/shopspring/decimal"

	"github.com/bankflow/backend/internal/application/usecase/classification"
	"github.com/bankflow/backend/internal/domain/valueobject"
)

// degenerateDenom guards the tax-base inversion against rate
// combinations where 1 + vat - withholding collapses to zero.
var degenerateDenom = decimal.New(1, -9)

// Calculator derives the tax breakdown of a statement line from its
// classification, inverting amount = base * (1 + vat - withholding) + commission.
type Calculator struct {
	classifier *classification.Classifier
	config     valueobject.MatchingConfig
}

// NewCalculator creates a new Calculator instance.
func NewCalculator(classifier *classification.Classifier, config valueobject.MatchingConfig) *Calculator {
	return &Calculator{
		classifier: classifier,
		config:     config,
	}
}

// ComputeLine classifies the description and returns the line's tax
// breakdown. disableFixedCommission is set for remittance sub-lines,
// which never carry the flat fee. Never fails.
func (c *Calculator) ComputeLine(description string, amount decimal.Decimal, disableFixedCommission bool) valueobject.TaxBreakdown {
	cls := c.classifier.Classify(description)

	if cls.IsInternalTransfer {
		return valueobject.TaxBreakdown{
			Category:    cls.Category,
			Commission:  decimal.Zero,
			VAT:         decimal.Zero,
			Withholding: decimal.Zero,
			NetAmount:   amount.Round(2),
		}
	}

	// The flat fee only ever applies to debits, and never as a positive
	// charge.
	commission := decimal.Zero
	if !disableFixedCommission && !cls.IsBulkRemittance && !cls.IsBankFee &&
		amount.IsNegative() && !c.classifier.IsCommissionExempt(description) {
		commission = c.config.FixedCommission
	}

	category := cls.Category
	if category == "" {
		if cls.IsBankFee {
			category = "Comisión bancaria"
		} else {
			category = "General"
		}
	}

	taxable := amount.Sub(commission)
	denom := decimal.NewFromInt(1).Add(cls.VATRate).Sub(cls.WithholdingRate)

	var base, vat, withholding decimal.Decimal
	if denom.Abs().LessThan(degenerateDenom) {
		base = taxable
		vat = decimal.Zero
		withholding = decimal.Zero
	} else {
		base = taxable.Div(denom)
		vat = base.Mul(cls.VATRate)
		withholding = base.Mul(cls.WithholdingRate).Neg()
	}

	base = base.Round(2)
	vat = vat.Round(2)
	withholding = withholding.Round(2)
	commission = commission.Round(2)

	// Repair rounding drift so the components re-sum to the rounded
	// amount: small deltas go to VAT, larger ones to the base.
	rounded := amount.Round(2)
	delta := rounded.Sub(base.Add(vat).Add(withholding).Add(commission))
	if !delta.IsZero() && delta.Abs().LessThanOrEqual(c.config.SumTolerance) {
		vat = vat.Add(delta)
	} else if delta.Abs().GreaterThan(c.config.SumTolerance) && !base.IsZero() {
		base = base.Add(delta)
	}

	// Net amount is display-oriented: always derived from the original
	// magnitude, independent of the base reconciliation above.
	net := rounded.Abs().Sub(vat.Abs()).Sub(withholding.Abs()).Round(2)

	return valueobject.TaxBreakdown{
		Category:    category,
		Commission:  commission,
		VAT:         vat,
		Withholding: withholding,
		NetAmount:   net,
	}
}
