// Package statement contains the statement processing pipeline facade.
package statement

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bankflow/backend/internal/application/usecase/classification"
	"github.com/bankflow/backend/internal/application/usecase/remittance"
	"github.com/bankflow/backend/internal/application/usecase/taxcalc"
	"github.com/bankflow/backend/internal/domain/entity"
	domainerror "github.com/bankflow/backend/internal/domain/error"
	"github.com/bankflow/backend/internal/domain/valueobject"
)

func newTestUseCase() *ProcessStatementUseCase {
	classifier := classification.NewClassifier(valueobject.DefaultRuleSet())
	config := valueobject.DefaultMatchingConfig()
	calculator := taxcalc.NewCalculator(classifier, config)
	expander := remittance.NewExpander(classifier, calculator, config)
	return NewProcessStatementUseCase(calculator, expander)
}

func statementLine(date, description, amount string) entity.StatementLine {
	return entity.StatementLine{
		Date:        date,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestProcessStatement_NilTransactionsIsSchemaError(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), ProcessStatementInput{})
	if err == nil {
		t.Fatal("expected error for nil transactions")
	}

	var stmtErr *domainerror.StatementError
	if !errors.As(err, &stmtErr) {
		t.Fatalf("expected StatementError, got %T", err)
	}
	if stmtErr.Code != domainerror.ErrCodeMissingTransactions {
		t.Errorf("code = %s, want %s", stmtErr.Code, domainerror.ErrCodeMissingTransactions)
	}
	if !errors.Is(err, domainerror.ErrMissingTransactions) {
		t.Error("expected wrapped ErrMissingTransactions sentinel")
	}
}

func TestProcessStatement_EmptyBatch(t *testing.T) {
	uc := newTestUseCase()

	output, err := uc.Execute(context.Background(), ProcessStatementInput{
		Transactions: []entity.StatementLine{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(output.Lines))
	}
	if len(output.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", output.Warnings)
	}
}

func TestProcessStatement_FullPipeline(t *testing.T) {
	uc := newTestUseCase()

	input := ProcessStatementInput{
		Transactions: []entity.StatementLine{
			statementLine("2024-03-10", "Transferencia interna", "500.00"),
			statementLine("12/03/2024", "Notaría Pérez", "-121.00"),
			statementLine("15/03/2024", "Remesa proveedores", "-1000.00"),
		},
		Details: []map[string]string{
			{"Fecha": "14/03/2024", "Beneficiario": "Talleres Ruiz", "Importe": "400,00"},
			{"Fecha": "16/03/2024", "Beneficiario": "Carpintería Vega", "Importe": "600,00"},
		},
	}

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.ProcessingID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected non-zero processing ID")
	}
	if output.ExpandedCount != 1 {
		t.Errorf("expandedCount = %d, want 1", output.ExpandedCount)
	}
	if len(output.Warnings) != 0 {
		t.Fatalf("warnings = %v, want none", output.Warnings)
	}
	if len(output.Lines) != 4 {
		t.Fatalf("got %d lines, want 4 (two pass-through + two sub-lines)", len(output.Lines))
	}

	transfer := output.Lines[0]
	if transfer.Date != "10/03/2024" {
		t.Errorf("date = %q, want normalized to dd/mm/yyyy", transfer.Date)
	}
	if transfer.Category != "Traspaso" {
		t.Errorf("category = %q, want Traspaso", transfer.Category)
	}
	if transfer.NetAmount.StringFixed(2) != "500.00" || !transfer.VAT.IsZero() || !transfer.Withholding.IsZero() {
		t.Errorf("transfer breakdown = %+v, want zero taxes and net 500.00", transfer)
	}

	notary := output.Lines[1]
	if notary.Commission.StringFixed(2) != "-1.00" {
		t.Errorf("commission = %s, want -1.00", notary.Commission.StringFixed(2))
	}
	if notary.VAT.StringFixed(2) != "-23.77" || notary.Withholding.StringFixed(2) != "16.98" {
		t.Errorf("notary taxes = %s / %s, want -23.77 / 16.98",
			notary.VAT.StringFixed(2), notary.Withholding.StringFixed(2))
	}
	if notary.NetAmount.StringFixed(2) != "80.25" {
		t.Errorf("net = %s, want 80.25", notary.NetAmount.StringFixed(2))
	}

	// Remittance aggregate replaced by its two detail payments, debit sign forced.
	if output.Lines[2].Description != "Talleres Ruiz" || output.Lines[3].Description != "Carpintería Vega" {
		t.Errorf("sub-lines = %q, %q", output.Lines[2].Description, output.Lines[3].Description)
	}
	if output.Lines[2].Amount.StringFixed(2) != "-400.00" || output.Lines[3].Amount.StringFixed(2) != "-600.00" {
		t.Errorf("sub-line amounts = %s, %s",
			output.Lines[2].Amount.StringFixed(2), output.Lines[3].Amount.StringFixed(2))
	}
	for _, sub := range output.Lines[2:] {
		if !sub.Commission.IsZero() {
			t.Errorf("sub-line commission = %s, want 0", sub.Commission.String())
		}
		if sub.Date != "15/03/2024" {
			t.Errorf("sub-line date = %q, want aggregate date", sub.Date)
		}
	}
}

func TestProcessStatement_MismatchWarningKeepsAggregate(t *testing.T) {
	uc := newTestUseCase()

	input := ProcessStatementInput{
		Transactions: []entity.StatementLine{
			statementLine("15/03/2024", "Remesa proveedores", "-1000.00"),
		},
		Details: []map[string]string{
			{"Fecha": "15/03/2024", "Beneficiario": "Talleres Ruiz", "Importe": "950,00"},
		},
	}

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.ExpandedCount != 0 {
		t.Errorf("expandedCount = %d, want 0", output.ExpandedCount)
	}
	if len(output.Lines) != 1 {
		t.Fatalf("got %d lines, want aggregate preserved", len(output.Lines))
	}
	if len(output.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", output.Warnings)
	}
	expected := "No cuadra remesa 15/03/2024: 'Remesa proveedores'. Extracto=-1000.00, Detalle=-950.00"
	if output.Warnings[0] != expected {
		t.Errorf("warning = %q, want %q", output.Warnings[0], expected)
	}
}

func TestProcessStatement_RemittanceWithoutDetailTable(t *testing.T) {
	uc := newTestUseCase()

	output, err := uc.Execute(context.Background(), ProcessStatementInput{
		Transactions: []entity.StatementLine{
			statementLine("15/03/2024", "Remesa proveedores", "-1000.00"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No detail table at all: the aggregate passes through without warning.
	if len(output.Lines) != 1 || len(output.Warnings) != 0 {
		t.Errorf("lines = %d, warnings = %v; want untouched aggregate", len(output.Lines), output.Warnings)
	}
}
