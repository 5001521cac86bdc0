// Package valueobject contains domain value objects for the BankFlow system.
package valueobject

import "github.com/shopspring/decimal"

// CategoryRule maps a set of keywords to a fiscal category and its rates.
type CategoryRule struct {
	Keywords        []string
	Category        string
	VATRate         decimal.Decimal
	WithholdingRate decimal.Decimal
}

// RuleSet is the immutable keyword configuration driving classification.
// Rules is ordered: the first rule with any keyword contained in the
// normalized description wins. The order encodes business priority and
// must not be rearranged.
type RuleSet struct {
	Rules           []CategoryRule
	DefaultCategory string
	DefaultVATRate  decimal.Decimal

	// AlwaysTaxableMarker forces the default VAT rate and takes
	// precedence over ZeroVATKeywords.
	AlwaysTaxableMarker string
	ZeroVATKeywords     []string

	// RemittanceKeywords flag a line as a bulk remittance, independently
	// of the matched category.
	RemittanceKeywords []string

	// CommissionExemptKeywords suppress the fixed commission even for
	// negative non-remittance lines.
	CommissionExemptKeywords []string
}

// DefaultRuleSet returns the production rule configuration.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Rules: []CategoryRule{
			{
				Keywords:        []string{"notar", "gestor", "gestoria", "notaria"},
				Category:        "Profesional (notaría/gestoría)",
				VATRate:         decimal.NewFromFloat(0.21),
				WithholdingRate: decimal.NewFromFloat(0.15),
			},
			{
				Keywords:        []string{"abogado", "abogados", "cuatrecasas", "bufete"},
				Category:        "Servicios legales",
				VATRate:         decimal.NewFromFloat(0.21),
				WithholdingRate: decimal.Zero,
			},
			{
				Keywords:        []string{"csc"},
				Category:        "Colaborador CSC",
				VATRate:         decimal.NewFromFloat(0.21),
				WithholdingRate: decimal.NewFromFloat(0.19),
			},
			{
				Keywords:        []string{"constructora", "obra", "contrata"},
				Category:        "Constructora",
				VATRate:         decimal.Zero,
				WithholdingRate: decimal.Zero,
			},
			{
				Keywords: []string{
					"comision", "comisiones", "gasto bancario", "gastos bancarios",
					"comision bancaria", "comision banco",
				},
				Category:        "Comisión bancaria",
				VATRate:         decimal.Zero,
				WithholdingRate: decimal.Zero,
			},
			{
				Keywords:        []string{"traspaso", "transferencia interna", "entre cuentas", "internal transfer"},
				Category:        "Traspaso",
				VATRate:         decimal.Zero,
				WithholdingRate: decimal.Zero,
			},
		},
		DefaultCategory:     "General",
		DefaultVATRate:      decimal.NewFromFloat(0.21),
		AlwaysTaxableMarker: "dalux",
		ZeroVATKeywords: []string{
			"transferencia internacional", "ltd.", "gmbh", "licencia", "licencias",
			"comision", "comisiones", "retenciones e ing. a cta. ggee", "ppl", "eniv",
			"drawdown", "constructora",
		},
		RemittanceKeywords:       []string{"remesa", "transferencias", "norma 19", "csb19", "cuaderno 19"},
		CommissionExemptKeywords: []string{"eniv", "drawdown"},
	}
}
