// Package valueobject contains domain value objects for the BankFlow system.
package valueobject

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lower-cases and strips accents",
			input:    "Notaría PÉREZ",
			expected: "notaria perez",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Comisión bancaria  ",
			expected: "comision bancaria",
		},
		{
			name:     "tilde n is preserved without the mark",
			input:    "Remesa nóminas ESPAÑA",
			expected: "remesa nominas espana",
		},
		{
			name:     "empty input yields empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "blank input yields empty string",
			input:    "   ",
			expected: "",
		},
		{
			name:     "plain ascii passes through",
			input:    "internal transfer",
			expected: "internal transfer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.expected {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContainsAnyKeyword(t *testing.T) {
	keywords := []string{"remesa", "norma 19", "csb19"}

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"direct hit", "Remesa proveedores", true},
		{"hit inside longer word", "REMESAS marzo", true},
		{"multi-word keyword", "Pago Norma 19 abril", true},
		{"accented input still matches", "Rémesa", true},
		{"no match", "Transferencia puntual", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsAnyKeyword(tt.input, keywords); got != tt.expected {
				t.Errorf("ContainsAnyKeyword(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
