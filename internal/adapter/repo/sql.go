package repo

import (
	"strings"

	"charityflow/internal/domain"
)

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// sortColumn maps an allowlisted API sort field to its column; anything
// unexpected falls back so the ORDER BY never carries caller input.
func sortColumn(columns map[string]string, field, fallback string) string {
	if col, ok := columns[field]; ok {
		return col
	}
	return fallback
}

func sqlDirection(order domain.SortOrder) string {
	if order == domain.SortAsc {
		return "ASC"
	}
	return "DESC"
}

// escapeLike neutralizes ILIKE wildcards in user-supplied substrings.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
