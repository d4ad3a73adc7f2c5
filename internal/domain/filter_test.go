package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_Clamping(t *testing.T) {
	cases := []struct {
		name       string
		page, lim  int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 50, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"limit above cap", 1, 500, 1, 200, 0},
		{"limit below floor", 2, -1, 2, 1, 1},
		{"second page window", 2, 200, 2, 200, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage(tc.page, tc.lim)
			assert.Equal(t, tc.wantPage, p.Number)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset())
		})
	}
}

func TestSortFieldAllowlist(t *testing.T) {
	assert.Equal(t, "amount", DonationSortField("amount"))
	assert.Equal(t, "donationDate", DonationSortField(""))
	assert.Equal(t, "donationDate", DonationSortField("ngo_id; DROP TABLE donations"))

	assert.Equal(t, "foundedAt", NGOSortField("foundedAt"))
	assert.Equal(t, "createdAt", NGOSortField("metrics"))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortDesc, ParseSortOrder(""))
	assert.Equal(t, SortDesc, ParseSortOrder("sideways"))
}
