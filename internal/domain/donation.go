package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DonationMethod is how the money arrived.
type DonationMethod string

const (
	MethodCash         DonationMethod = "cash"
	MethodCard         DonationMethod = "card"
	MethodBankTransfer DonationMethod = "bank_transfer"
	MethodCrypto       DonationMethod = "crypto"
)

// DonationStatus tracks the settlement state of a donation.
type DonationStatus string

const (
	StatusPending   DonationStatus = "pending"
	StatusCompleted DonationStatus = "completed"
	StatusFailed    DonationStatus = "failed"
	StatusRefunded  DonationStatus = "refunded"
)

// Currency is the ISO code the amount is denominated in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyLBP Currency = "LBP"
)

// The same amount bound applies to every method and currency.
var (
	MinAmount = decimal.NewFromInt(1)
	MaxAmount = decimal.NewFromInt(100000)
)

// DonationMeta carries free-form provenance fields.
type DonationMeta struct {
	Source   string `json:"source"`
	Platform string `json:"platform"`
	Note     string `json:"note"`
}

// AllocationEntry earmarks a percentage of a donation for a labelled purpose.
type AllocationEntry struct {
	Label   string  `json:"label" validate:"required"`
	Percent float64 `json:"percent" validate:"min=0,max=100"`
}

// Donation is a single contribution made to an NGO. NGOID is checked for
// shape only; the referenced NGO may have been deleted and the orphaned
// reference is tolerated everywhere downstream.
type Donation struct {
	ID           string            `json:"id"`
	DonorName    string            `json:"donorName" validate:"required"`
	Method       DonationMethod    `json:"method" validate:"required,oneof=cash card bank_transfer crypto"`
	Amount       decimal.Decimal   `json:"amount"`
	DonationDate time.Time         `json:"donationDate" validate:"required"`
	IsRecurring  bool              `json:"isRecurring"`
	Tags         []string          `json:"tags"`
	ReceiptURLs  []string          `json:"receiptUrls"`
	Meta         DonationMeta      `json:"meta"`
	DonorEmail   string            `json:"donorEmail" validate:"required"`
	NGOID        string            `json:"ngoId" validate:"required,uuid"`
	Status       DonationStatus    `json:"status" validate:"required,oneof=pending completed failed refunded"`
	Currency     Currency          `json:"currency" validate:"required,oneof=USD EUR LBP"`
	Allocation   []AllocationEntry `json:"allocation" validate:"dive"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ApplyDefaults fills the enum defaults the way the write API documents them.
func (d *Donation) ApplyDefaults() {
	if d.Status == "" {
		d.Status = StatusCompleted
	}
	if d.Currency == "" {
		d.Currency = CurrencyUSD
	}
}

// Normalize trims string fields and lowercases the donor name before storage.
func (d *Donation) Normalize() {
	d.DonorName = lowercaser.String(strings.TrimSpace(d.DonorName))
	d.DonorEmail = strings.TrimSpace(d.DonorEmail)
	d.Meta.Source = strings.TrimSpace(d.Meta.Source)
	d.Meta.Platform = strings.TrimSpace(d.Meta.Platform)
	d.Meta.Note = strings.TrimSpace(d.Meta.Note)
}

// AllocationTotal sums the earmarked percentages.
func (d *Donation) AllocationTotal() float64 {
	var sum float64
	for _, a := range d.Allocation {
		sum += a.Percent
	}
	return sum
}

// DonationPatch is a partial update; nil fields are left unchanged.
type DonationPatch struct {
	DonorName    *string            `json:"donorName"`
	Method       *DonationMethod    `json:"method"`
	Amount       *decimal.Decimal   `json:"amount"`
	DonationDate *time.Time         `json:"donationDate"`
	IsRecurring  *bool              `json:"isRecurring"`
	Tags         *[]string          `json:"tags"`
	ReceiptURLs  *[]string          `json:"receiptUrls"`
	Meta         *DonationMeta      `json:"meta"`
	DonorEmail   *string            `json:"donorEmail"`
	NGOID        *string            `json:"ngoId"`
	Status       *DonationStatus    `json:"status"`
	Currency     *Currency          `json:"currency"`
	Allocation   *[]AllocationEntry `json:"allocation"`
}

// Apply merges the patch into the record. Cross-field rules are evaluated
// against the merged state, not the delta.
func (p DonationPatch) Apply(d *Donation) {
	if p.DonorName != nil {
		d.DonorName = *p.DonorName
	}
	if p.Method != nil {
		d.Method = *p.Method
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.DonationDate != nil {
		d.DonationDate = *p.DonationDate
	}
	if p.IsRecurring != nil {
		d.IsRecurring = *p.IsRecurring
	}
	if p.Tags != nil {
		d.Tags = *p.Tags
	}
	if p.ReceiptURLs != nil {
		d.ReceiptURLs = *p.ReceiptURLs
	}
	if p.Meta != nil {
		d.Meta = *p.Meta
	}
	if p.DonorEmail != nil {
		d.DonorEmail = *p.DonorEmail
	}
	if p.NGOID != nil {
		d.NGOID = *p.NGOID
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Currency != nil {
		d.Currency = *p.Currency
	}
	if p.Allocation != nil {
		d.Allocation = *p.Allocation
	}
}
