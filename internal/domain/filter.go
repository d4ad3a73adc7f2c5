package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SortOrder is the requested direction for a listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder defaults to descending, matching the read API.
func ParseSortOrder(raw string) SortOrder {
	if raw == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Page is a clamped pagination window over a filtered result set.
type Page struct {
	Number int
	Limit  int
}

// NewPage clamps page to >= 1 and limit to [1, MaxLimit], applying defaults
// for zero values.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset is the number of records to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Sortable fields are allowlisted per record kind: an unknown requested field
// falls back to the default instead of being passed through to storage.
var donationSortFields = map[string]struct{}{
	"donationDate": {},
	"amount":       {},
	"donorName":    {},
	"status":       {},
	"createdAt":    {},
}

var ngoSortFields = map[string]struct{}{
	"name":      {},
	"country":   {},
	"category":  {},
	"foundedAt": {},
	"createdAt": {},
}

// DonationSortField resolves a caller-supplied sort field against the
// allowlist; the default is donationDate.
func DonationSortField(requested string) string {
	if _, ok := donationSortFields[requested]; ok {
		return requested
	}
	return "donationDate"
}

// NGOSortField resolves a caller-supplied sort field against the allowlist;
// the default is createdAt.
func NGOSortField(requested string) string {
	if _, ok := ngoSortFields[requested]; ok {
		return requested
	}
	return "createdAt"
}

// DonationFilter holds optional listing criteria; zero/nil fields impose no
// constraint and supplied criteria are combined with AND. Boolean criteria
// use *bool so that filtering on false stays distinguishable from "unset".
type DonationFilter struct {
	NGOID     string
	Method    string
	Status    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Recurring *bool
	Tag       string
	StartDate *time.Time
	EndDate   *time.Time
}

// NGOFilter holds optional listing criteria for organizations. Country is a
// case-insensitive exact match and Search a case-insensitive name substring.
type NGOFilter struct {
	Country      string
	Category     string
	Verified     *bool
	Tag          string
	FoundedAfter *time.Time
	Search       string
}
