// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/bankflow/backend/internal/application/usecase/statement"
	"github.com/bankflow/backend/internal/domain/entity"
	"github.com/bankflow/backend/internal/domain/valueobject"
)

// StatementLineRequest represents one raw statement line in the request.
// Amount is a string so both "1.234,56" and "1234.56" styles bind.
type StatementLineRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
	Amount      string `json:"amount" binding:"required"`
}

// ProcessStatementRequest represents the request body for statement processing.
// Details is the optional remittance detail table as raw column→cell rows.
type ProcessStatementRequest struct {
	Transactions []StatementLineRequest `json:"transactions" binding:"required"`
	Details      []map[string]string    `json:"details,omitempty"`
}

// ProcessedLineResponse represents a classified, tax-broken-down line.
// Monetary values are serialized as fixed 2-decimal strings.
type ProcessedLineResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Commission  string `json:"commission"`
	VAT         string `json:"vat"`
	Withholding string `json:"withholding"`
	NetAmount   string `json:"net_amount"`
}

// ProcessStatementResponse represents the response for statement processing.
type ProcessStatementResponse struct {
	ProcessingID  string                  `json:"processing_id"`
	Lines         []ProcessedLineResponse `json:"lines"`
	Warnings      []string                `json:"warnings"`
	ExpandedCount int                     `json:"expanded_count"`
	WarningCount  int                     `json:"warning_count"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ToProcessStatementInput converts the request DTO into the use case
// input. An unparsable amount degrades to zero here, at the boundary,
// mirroring the upstream reader's contract of sign-resolved decimals.
func ToProcessStatementInput(req ProcessStatementRequest) statement.ProcessStatementInput {
	transactions := make([]entity.StatementLine, 0, len(req.Transactions))
	for _, line := range req.Transactions {
		amount, _ := valueobject.ParseAmount(line.Amount)
		transactions = append(transactions, entity.StatementLine{
			Date:        line.Date,
			Description: line.Description,
			Amount:      amount,
		})
	}

	return statement.ProcessStatementInput{
		Transactions: transactions,
		Details:      req.Details,
	}
}

// ToProcessStatementResponse converts the use case output to the response DTO.
func ToProcessStatementResponse(output *statement.ProcessStatementOutput) ProcessStatementResponse {
	lines := make([]ProcessedLineResponse, len(output.Lines))
	for i, line := range output.Lines {
		lines[i] = ProcessedLineResponse{
			Date:        line.Date,
			Description: line.Description,
			Category:    line.Category,
			Amount:      line.Amount.StringFixed(2),
			Commission:  line.Commission.StringFixed(2),
			VAT:         line.VAT.StringFixed(2),
			Withholding: line.Withholding.StringFixed(2),
			NetAmount:   line.NetAmount.StringFixed(2),
		}
	}

	warnings := output.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return ProcessStatementResponse{
		ProcessingID:  output.ProcessingID.String(),
		Lines:         lines,
		Warnings:      warnings,
		ExpandedCount: output.ExpandedCount,
		WarningCount:  len(warnings),
	}
}
