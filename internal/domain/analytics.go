package domain

import "github.com/shopspring/decimal"

// NGOSummary is one grouped row of the by-NGO analytics view.
type NGOSummary struct {
	NGOID       string          `json:"ngoId"`
	NGOName     string          `json:"ngoName"`
	Country     string          `json:"country"`
	Category    NGOCategory     `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// MethodSummary is one grouped row of the by-method analytics view.
type MethodSummary struct {
	Method      DonationMethod  `json:"method"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// DailySummary is one grouped row of the daily analytics view. Day is the
// donation date truncated to a UTC calendar day, formatted YYYY-MM-DD.
type DailySummary struct {
	Day         string          `json:"day"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// NGORef is the slice of NGO attributes carried by joined views.
type NGORef struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Country    string      `json:"country"`
	Category   NGOCategory `json:"category"`
	IsVerified bool        `json:"isVerified"`
}

// JoinedDonation is a donation augmented with its referenced NGO. Donations
// whose reference does not resolve are dropped from joined listings.
type JoinedDonation struct {
	Donation
	NGO NGORef `json:"ngo"`
}
