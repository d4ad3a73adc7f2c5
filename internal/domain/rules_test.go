package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func validDonation() *Donation {
	return &Donation{
		DonorName:    "alice",
		Method:       MethodCash,
		Amount:       decimal.NewFromInt(100),
		DonationDate: testNow.AddDate(0, 0, -1),
		DonorEmail:   "alice@example.com",
		NGOID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		Status:       StatusCompleted,
		Currency:     CurrencyUSD,
	}
}

func fieldsOf(errs ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, fe.Field)
	}
	return out
}

func TestValidateDonation_Accepted(t *testing.T) {
	assert.Nil(t, ValidateDonation(validDonation(), testNow))
}

func TestValidateDonation_AmountBounds(t *testing.T) {
	cases := []struct {
		name   string
		amount decimal.Decimal
		ok     bool
	}{
		{"lower bound inclusive", decimal.NewFromInt(1), true},
		{"upper bound inclusive", decimal.NewFromInt(100000), true},
		{"below lower", decimal.NewFromFloat(0.99), false},
		{"above upper", decimal.NewFromInt(100001), false},
		{"zero", decimal.Zero, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDonation()
			d.Amount = tc.amount
			errs := ValidateDonation(d, testNow)
			if tc.ok {
				assert.Nil(t, errs)
			} else {
				assert.Contains(t, fieldsOf(errs), "amount")
			}
		})
	}
}

func TestValidateDonation_FutureDateRejected(t *testing.T) {
	d := validDonation()
	d.DonationDate = testNow.Add(time.Minute)
	errs := ValidateDonation(d, testNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "donationDate", errs[0].Field)

	// exactly now is not "strictly after"
	d.DonationDate = testNow
	assert.Nil(t, ValidateDonation(d, testNow))
}

func TestValidateDonation_CryptoRequiresSource(t *testing.T) {
	cases := []struct {
		name   string
		source string
		ok     bool
	}{
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"single char", "x", false},
		{"two chars", "ok", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDonation()
			d.Method = MethodCrypto
			d.Meta.Source = tc.source
			errs := ValidateDonation(d, testNow)
			if tc.ok {
				assert.Nil(t, errs)
			} else {
				assert.Contains(t, fieldsOf(errs), "meta.source")
			}
		})
	}

	// the rule only binds crypto donations
	d := validDonation()
	d.Method = MethodCard
	d.Meta.Source = ""
	assert.Nil(t, ValidateDonation(d, testNow))
}

func TestValidateDonation_RefundRequiresNote(t *testing.T) {
	d := validDonation()
	d.Status = StatusRefunded
	d.Meta.Note = "  abc  "
	errs := ValidateDonation(d, testNow)
	require.NotNil(t, errs)
	assert.Contains(t, fieldsOf(errs), "meta.note")

	d.Meta.Note = "duplicate charge"
	assert.Nil(t, ValidateDonation(d, testNow))
}

func TestValidateDonation_AllocationSum(t *testing.T) {
	d := validDonation()
	d.Allocation = []AllocationEntry{
		{Label: "field work", Percent: 60},
		{Label: "admin", Percent: 40},
	}
	assert.Nil(t, ValidateDonation(d, testNow), "sum of exactly 100 is valid")

	d.Allocation = append(d.Allocation, AllocationEntry{Label: "extra", Percent: 1})
	errs := ValidateDonation(d, testNow)
	assert.Contains(t, fieldsOf(errs), "allocation")

	d.Allocation = nil
	assert.Nil(t, ValidateDonation(d, testNow), "empty allocation is valid")
}

func TestValidateDonation_AllocationEntryShape(t *testing.T) {
	d := validDonation()
	d.Allocation = []AllocationEntry{{Label: "", Percent: 120}}
	errs := ValidateDonation(d, testNow)
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "allocation[0].label")
	assert.Contains(t, fields, "allocation[0].percent")
}

func TestValidateDonation_DonorEmail(t *testing.T) {
	d := validDonation()
	d.DonorEmail = "not-an-email"
	errs := ValidateDonation(d, testNow)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldError{Field: "donorEmail", Message: "invalid email format"}, errs[0])
}

func TestValidateDonation_CollectsEveryViolation(t *testing.T) {
	d := validDonation()
	d.Amount = decimal.NewFromInt(200000)
	d.DonationDate = testNow.Add(time.Hour)
	d.Method = MethodCrypto
	d.Status = StatusRefunded
	errs := ValidateDonation(d, testNow)
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "donationDate")
	assert.Contains(t, fields, "meta.source")
	assert.Contains(t, fields, "meta.note")
}

func validNGO() *NGO {
	return &NGO{
		Name:     "hope foundation",
		Country:  "Lebanon",
		Category: CategoryHealth,
	}
}

func TestValidateNGO_VerifiedEmail(t *testing.T) {
	n := validNGO()
	assert.Nil(t, ValidateNGO(n))

	n.IsVerified = true
	errs := ValidateNGO(n)
	require.Len(t, errs, 1)
	assert.Equal(t, "contact.email", errs[0].Field)

	n.Contact.Email = "not an email"
	errs = ValidateNGO(n)
	require.Len(t, errs, 1)

	n.Contact.Email = "info@hope.org"
	assert.Nil(t, ValidateNGO(n))
}

func TestValidateNGO_Shape(t *testing.T) {
	n := &NGO{Category: "charity"}
	n.Metrics.Rating = 7
	errs := ValidateNGO(n)
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "country")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "metrics.rating")
}

func TestDonationNormalize(t *testing.T) {
	d := validDonation()
	d.DonorName = "  O\"Brien, JR.  "
	d.DonorEmail = " alice@example.com "
	d.Meta = DonationMeta{Source: " web ", Platform: " stripe ", Note: "  matched gift  "}
	d.Normalize()
	assert.Equal(t, `o"brien, jr.`, d.DonorName)
	assert.Equal(t, "alice@example.com", d.DonorEmail)
	assert.Equal(t, "web", d.Meta.Source)
	assert.Equal(t, "stripe", d.Meta.Platform)
	assert.Equal(t, "matched gift", d.Meta.Note)
}

func TestNGONormalize(t *testing.T) {
	n := validNGO()
	n.Name = "  Hope FOUNDATION "
	n.Country = " Lebanon "
	n.Normalize()
	assert.Equal(t, "hope foundation", n.Name)
	assert.Equal(t, "Lebanon", n.Country)
}

func TestDonationApplyDefaults(t *testing.T) {
	d := &Donation{}
	d.ApplyDefaults()
	assert.Equal(t, StatusCompleted, d.Status)
	assert.Equal(t, CurrencyUSD, d.Currency)

	d = &Donation{Status: StatusPending, Currency: CurrencyEUR}
	d.ApplyDefaults()
	assert.Equal(t, StatusPending, d.Status)
	assert.Equal(t, CurrencyEUR, d.Currency)
}

func TestDonationPatchApply_MergedStateRevalidates(t *testing.T) {
	d := validDonation()
	status := StatusRefunded
	DonationPatch{Status: &status}.Apply(d)
	errs := ValidateDonation(d, testNow)
	assert.Contains(t, fieldsOf(errs), "meta.note",
		"refund rule must hold on the post-update state")
}
