package domain

import (
	"strings"
	"time"
)

// Cross-field business rules. Each rule inspects the fully-merged candidate
// record and contributes at most one field error; the whole list always runs
// so a report covers every violation, never just the first.

type donationRule func(d *Donation, now time.Time) *FieldError

var donationRules = []donationRule{
	ruleAmountBounds,
	ruleDonationDateNotFuture,
	ruleCryptoSource,
	ruleRefundNote,
	ruleAllocationSum,
	ruleDonorEmail,
}

// ValidateDonation checks field shape plus the business rules against now.
// Returns nil when the record is acceptable.
func ValidateDonation(d *Donation, now time.Time) ValidationErrors {
	errs := shapeErrors(d)
	for _, rule := range donationRules {
		if fe := rule(d, now); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// The bound is flat: 1..100000 inclusive for every method and currency.
func ruleAmountBounds(d *Donation, _ time.Time) *FieldError {
	if d.Amount.LessThan(MinAmount) || d.Amount.GreaterThan(MaxAmount) {
		return &FieldError{Field: "amount", Message: "must be between 1 and 100000"}
	}
	return nil
}

func ruleDonationDateNotFuture(d *Donation, now time.Time) *FieldError {
	if !d.DonationDate.IsZero() && d.DonationDate.After(now) {
		return &FieldError{Field: "donationDate", Message: "donation date cannot be in the future"}
	}
	return nil
}

func ruleCryptoSource(d *Donation, _ time.Time) *FieldError {
	if d.Method != MethodCrypto {
		return nil
	}
	if len(strings.TrimSpace(d.Meta.Source)) < 2 {
		return &FieldError{Field: "meta.source", Message: "crypto donations require meta.source"}
	}
	return nil
}

func ruleRefundNote(d *Donation, _ time.Time) *FieldError {
	if d.Status != StatusRefunded {
		return nil
	}
	if len(strings.TrimSpace(d.Meta.Note)) < 5 {
		return &FieldError{Field: "meta.note", Message: "refunded donations require a reason"}
	}
	return nil
}

// A sum of exactly 100 is valid, as is an empty allocation list.
func ruleAllocationSum(d *Donation, _ time.Time) *FieldError {
	if d.AllocationTotal() > 100 {
		return &FieldError{Field: "allocation", Message: "allocation percent sum cannot exceed 100"}
	}
	return nil
}

func ruleDonorEmail(d *Donation, _ time.Time) *FieldError {
	if d.DonorEmail == "" {
		return nil // covered by the required shape check
	}
	if !emailPattern.MatchString(d.DonorEmail) {
		return &FieldError{Field: "donorEmail", Message: "invalid email format"}
	}
	return nil
}

type ngoRule func(n *NGO) *FieldError

var ngoRules = []ngoRule{
	ruleVerifiedContactEmail,
}

// ValidateNGO checks field shape plus the business rules.
// Returns nil when the record is acceptable.
func ValidateNGO(n *NGO) ValidationErrors {
	errs := shapeErrors(n)
	for _, rule := range ngoRules {
		if fe := rule(n); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ruleVerifiedContactEmail(n *NGO) *FieldError {
	if !n.IsVerified {
		return nil
	}
	email := strings.TrimSpace(n.Contact.Email)
	if email == "" || !emailPattern.MatchString(email) {
		return &FieldError{Field: "contact.email", Message: "verified NGOs must have a valid contact.email"}
	}
	return nil
}
