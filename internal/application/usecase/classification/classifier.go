// Package classification contains the fiscal classification engine.
package classification

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankflow/backend/internal/domain/valueobject"
)

// Classifier maps a statement description to its fiscal classification
// using an ordered keyword rule table. The rule set is injected at
// construction so tests can substitute it without global state.
type Classifier struct {
	rules valueobject.RuleSet
}

// NewClassifier creates a new Classifier instance.
func NewClassifier(rules valueobject.RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify derives the fiscal classification for a description. Pure and
// deterministic; an empty or blank description yields the default
// category with all flags false.
func (c *Classifier) Classify(description string) valueobject.Classification {
	normalized := valueobject.NormalizeText(description)

	result := valueobject.Classification{
		Category:         c.rules.DefaultCategory,
		VATRate:          c.rules.DefaultVATRate,
		IsBulkRemittance: valueobject.ContainsAnyKeyword(normalized, c.rules.RemittanceKeywords),
	}

	for _, rule := range c.rules.Rules {
		if !valueobject.ContainsAnyKeyword(normalized, rule.Keywords) {
			continue
		}
		result.Category = rule.Category
		result.VATRate = rule.VATRate
		result.WithholdingRate = rule.WithholdingRate

		categoryName := valueobject.NormalizeText(rule.Category)
		result.IsInternalTransfer = strings.Contains(categoryName, "traspaso") ||
			strings.Contains(categoryName, "transfer")
		result.IsBankFee = strings.Contains(categoryName, "comision") ||
			strings.Contains(categoryName, "fee")
		break
	}

	// The always-taxable marker beats the zero-VAT list.
	if c.rules.AlwaysTaxableMarker != "" && strings.Contains(normalized, c.rules.AlwaysTaxableMarker) {
		result.VATRate = c.rules.DefaultVATRate
	} else if valueobject.ContainsAnyKeyword(normalized, c.rules.ZeroVATKeywords) {
		result.VATRate = decimal.Zero
	}

	return result
}

// IsCommissionExempt reports whether the description carries one of the
// markers that suppress the fixed commission.
func (c *Classifier) IsCommissionExempt(description string) bool {
	return valueobject.ContainsAnyKeyword(description, c.rules.CommissionExemptKeywords)
}
