// Package remittance contains the bulk remittance matching and expansion logic.
package remittance

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/bankflow/backend/internal/application/usecase/classification"
	"github.com/bankflow/backend/internal/application/usecase/taxcalc"
	"github.com/bankflow/backend/internal/domain/entity"
	"github.com/bankflow/backend/internal/domain/valueobject"
)

// Expander replaces aggregate remittance lines with the underlying
// payments from the detail table, each re-taxed without the fixed
// commission. Lines that cannot be reconciled pass through unchanged
// with a warning.
type Expander struct {
	classifier *classification.Classifier
	calculator *taxcalc.Calculator
	config     valueobject.MatchingConfig
}

// NewExpander creates a new Expander instance.
func NewExpander(
	classifier *classification.Classifier,
	calculator *taxcalc.Calculator,
	config valueobject.MatchingConfig,
) *Expander {
	return &Expander{
		classifier: classifier,
		calculator: calculator,
		config:     config,
	}
}

// Expand walks the processed lines in their original order and expands
// the ones flagged as bulk remittances. It returns the final table, the
// warnings in the order the conditions were met, and the number of
// aggregate lines that were expanded.
func (e *Expander) Expand(lines []entity.ProcessedLine, details []entity.RemittanceDetail) ([]entity.ProcessedLine, []string, int) {
	if len(lines) == 0 {
		return lines, nil, 0
	}

	hasDetailDates := false
	for _, d := range details {
		if d.Date != "" {
			hasDetailDates = true
			break
		}
	}

	out := make([]entity.ProcessedLine, 0, len(lines))
	var warnings []string
	expanded := 0

	for _, line := range lines {
		cls := e.classifier.Classify(line.Description)
		if !cls.IsBulkRemittance || len(details) == 0 {
			out = append(out, line)
			continue
		}

		candidates := details
		if hasDetailDates {
			candidates = nil
			for _, d := range details {
				if valueobject.DateInWindow(d.Date, line.Date, e.config.DateWindowDays) {
					candidates = append(candidates, d)
				}
			}
		}

		if len(candidates) == 0 {
			warnings = append(warnings, fmt.Sprintf("Remesa sin detalle coincidente (%s): '%s'", line.Date, line.Description))
			out = append(out, line)
			continue
		}

		target := line.Amount.Round(2)
		sum := decimal.Zero
		for _, d := range candidates {
			sum = sum.Add(d.Amount)
		}
		detailSum := sum.Abs().Round(2)
		if target.IsNegative() {
			detailSum = detailSum.Neg()
		}

		if !e.config.IsWithinTolerance(target, detailSum) {
			warnings = append(warnings, fmt.Sprintf(
				"No cuadra remesa %s: '%s'. Extracto=%s, Detalle=%s",
				line.Date, line.Description, target.StringFixed(2), detailSum.StringFixed(2),
			))
			out = append(out, line)
			continue
		}

		for _, d := range candidates {
			amount := d.Amount.Abs()
			if target.IsNegative() {
				amount = amount.Neg()
			}

			// Sub-lines never carry the fixed commission.
			breakdown := e.calculator.ComputeLine(d.Description, amount, true)
			out = append(out, entity.ProcessedLine{
				Date:        line.Date,
				Description: d.Description,
				Category:    breakdown.Category,
				Amount:      amount.Round(2),
				Commission:  decimal.Zero,
				VAT:         breakdown.VAT,
				Withholding: breakdown.Withholding,
				NetAmount:   breakdown.NetAmount,
			})
		}
		expanded++

		slog.Debug("Expanded remittance line",
			"date", line.Date,
			"description", line.Description,
			"subLines", len(candidates),
		)
	}

	return out, warnings, expanded
}
