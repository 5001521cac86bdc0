// Package statement contains the statement processing pipeline facade.
package statement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bankflow/backend/internal/application/usecase/remittance"
	"github.com/bankflow/backend/internal/application/usecase/taxcalc"
	"github.com/bankflow/backend/internal/domain/entity"
	domainerror "github.com/bankflow/backend/internal/domain/error"
	"github.com/bankflow/backend/internal/domain/valueobject"
)

// ProcessStatementInput represents the input for statement processing.
type ProcessStatementInput struct {
	Transactions []entity.StatementLine
	Details      []map[string]string
}

// ProcessStatementOutput represents the output of statement processing.
type ProcessStatementOutput struct {
	ProcessingID  uuid.UUID
	Lines         []entity.ProcessedLine
	Warnings      []string
	ExpandedCount int
}

// ProcessStatementUseCase runs the full pipeline: per-row classification
// and tax breakdown, followed by remittance expansion against the detail
// table. Row-level failures degrade to defaults or warnings; only a
// structurally invalid input errors.
type ProcessStatementUseCase struct {
	calculator *taxcalc.Calculator
	expander   *remittance.Expander
}

// NewProcessStatementUseCase creates a new ProcessStatementUseCase instance.
func NewProcessStatementUseCase(calculator *taxcalc.Calculator, expander *remittance.Expander) *ProcessStatementUseCase {
	return &ProcessStatementUseCase{
		calculator: calculator,
		expander:   expander,
	}
}

// Execute performs the statement processing operation.
func (uc *ProcessStatementUseCase) Execute(ctx context.Context, input ProcessStatementInput) (*ProcessStatementOutput, error) {
	if input.Transactions == nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeMissingTransactions,
			"transactions table is required",
			domainerror.ErrMissingTransactions,
		)
	}

	base := make([]entity.ProcessedLine, 0, len(input.Transactions))
	for _, line := range input.Transactions {
		breakdown := uc.calculator.ComputeLine(line.Description, line.Amount, false)
		base = append(base, entity.ProcessedLine{
			Date:        valueobject.NormalizeDate(line.Date),
			Description: line.Description,
			Category:    breakdown.Category,
			Amount:      line.Amount.Round(2),
			Commission:  breakdown.Commission,
			VAT:         breakdown.VAT,
			Withholding: breakdown.Withholding,
			NetAmount:   breakdown.NetAmount,
		})
	}

	details := remittance.NormalizeDetailTable(input.Details)
	lines, warnings, expanded := uc.expander.Expand(base, details)

	output := &ProcessStatementOutput{
		ProcessingID:  uuid.New(),
		Lines:         lines,
		Warnings:      warnings,
		ExpandedCount: expanded,
	}

	slog.Info("Processed statement batch",
		"processingID", output.ProcessingID,
		"inputLines", len(input.Transactions),
		"outputLines", len(lines),
		"detailRows", len(details),
		"expanded", expanded,
		"warnings", len(warnings),
	)

	return output, nil
}
