// Package remittance contains the bulk remittance matching and expansion logic.
package remittance

import (
	"sort"
	"strings"

	"github.com/bankflow/backend/internal/domain/entity"
	"github.com/bankflow/backend/internal/domain/valueobject"
)

// Header candidates for column-agnostic detail tables, in priority order.
// Matching is by substring containment on the normalized header name.
var (
	dateHeaderCandidates    = []string{"fecha", "f. operacion", "f operacion", "fecha valor", "fecha envio"}
	conceptHeaderCandidates = []string{"concepto", "descripcion", "detalle", "concept"}
	amountHeaderCandidates  = []string{"importe", "amount", "importe eur", "sum"}
	payeeHeaderCandidates   = []string{"proveedor", "beneficiario", "ordenante", "cliente", "destinatario", "nombre"}
)

// findColumn resolves the first column whose normalized name contains a
// candidate, scanning candidates in priority order.
func findColumn(columns, candidates []string) string {
	for _, candidate := range candidates {
		for _, column := range columns {
			if strings.Contains(valueobject.NormalizeText(column), candidate) {
				return column
			}
		}
	}
	return ""
}

// columnNames collects the sorted union of column names across rows, so
// resolution does not depend on map iteration order.
func columnNames(rows []map[string]string) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, row := range rows {
		for name := range row {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// NormalizeDetailTable converts raw detail rows into RemittanceDetail
// records. Column names are resolved by fuzzy header matching; rows with
// an unparsable amount are dropped. The display description is the payee
// alone, "payee – concept" when both exist and differ, or whichever of
// the two is present.
func NormalizeDetailTable(rows []map[string]string) []entity.RemittanceDetail {
	if len(rows) == 0 {
		return nil
	}

	columns := columnNames(rows)
	dateCol := findColumn(columns, dateHeaderCandidates)
	conceptCol := findColumn(columns, conceptHeaderCandidates)
	amountCol := findColumn(columns, amountHeaderCandidates)
	payeeCol := findColumn(columns, payeeHeaderCandidates)
	if payeeCol == "" {
		payeeCol = conceptCol
	}

	var details []entity.RemittanceDetail
	for _, row := range rows {
		amount, ok := valueobject.ParseAmount(row[amountCol])
		if amountCol == "" || !ok {
			continue
		}

		date := ""
		if dateCol != "" {
			date = valueobject.NormalizeDate(row[dateCol])
		}
		concept := strings.TrimSpace(row[conceptCol])
		payee := ""
		if payeeCol != "" {
			payee = strings.TrimSpace(row[payeeCol])
		}

		description := concept
		switch {
		case payee != "" && concept != "" && !strings.Contains(strings.ToLower(concept), strings.ToLower(payee)):
			description = payee + " – " + concept
		case payee != "" && concept == "":
			description = payee
		case payee != "" && concept != "":
			description = payee
		}

		details = append(details, entity.RemittanceDetail{
			Date:        date,
			Payee:       payee,
			Description: description,
			Amount:      amount,
		})
	}

	return details
}
