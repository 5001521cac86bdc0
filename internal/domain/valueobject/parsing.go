// Package valueobject contains domain value objects for the BankFlow system.
package valueobject

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OutputDateLayout is the canonical date format for processed lines.
const OutputDateLayout = "02/01/2006"

// inputDateLayouts are the date formats accepted at the boundary.
var inputDateLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02"}

// ParseAmount parses a monetary amount accepting both decimal-comma
// ("1.234,56") and decimal-point ("1234.56") styles. Currency symbols,
// the literal "EUR" and spaces are stripped first. The decimal comma
// wins when a comma appears after the last dot. Returns ok=false when
// the value cannot be parsed; the caller decides whether that degrades
// to zero or surfaces as a warning.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "EUR", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}

	normalized := s
	if strings.Contains(s, ".") && strings.Contains(s, ",") &&
		strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	} else {
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}

	if d, err := decimal.NewFromString(normalized); err == nil {
		return d, true
	}

	// Thousands-dotted values without a decimal part ("1.234.567").
	retry := strings.ReplaceAll(s, ".", "")
	retry = strings.ReplaceAll(retry, ",", ".")
	if d, err := decimal.NewFromString(retry); err == nil {
		return d, true
	}

	return decimal.Zero, false
}

// NormalizeDate converts a date in any accepted input format to
// dd/mm/yyyy. Blank input yields an empty string; an unrecognized value
// passes through trimmed, so downstream matching can still compare it.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range inputDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(OutputDateLayout)
		}
	}
	return s
}

// DateInWindow reports whether date falls within ±days of pivot. Both
// are dd/mm/yyyy strings; unparsable values are never in the window.
func DateInWindow(date, pivot string, days int) bool {
	d, err := time.Parse(OutputDateLayout, strings.TrimSpace(date))
	if err != nil {
		return false
	}
	p, err := time.Parse(OutputDateLayout, strings.TrimSpace(pivot))
	if err != nil {
		return false
	}
	return !d.Before(p.AddDate(0, 0, -days)) && !d.After(p.AddDate(0, 0, days))
}
