package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"charityflow/internal/domain"
)

// Query parameter parsing is lenient: unparseable values behave as if the
// parameter were absent, so a bad filter widens results instead of erroring.

func queryPage(q url.Values) domain.Page {
	number, _ := strconv.Atoi(q.Get("page"))
	limit := domain.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			// A supplied zero is below the floor, not "unset".
			if n < 1 {
				n = 1
			}
			limit = n
		}
	}
	return domain.NewPage(number, limit)
}

func queryBool(q url.Values, key string) *bool {
	switch q.Get(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func queryTime(q url.Values, key string) *time.Time {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

func queryDecimal(q url.Values, key string) *decimal.Decimal {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func donationFilterFromQuery(q url.Values) domain.DonationFilter {
	return domain.DonationFilter{
		NGOID:     q.Get("ngoId"),
		Method:    q.Get("method"),
		Status:    q.Get("status"),
		MinAmount: queryDecimal(q, "minAmount"),
		MaxAmount: queryDecimal(q, "maxAmount"),
		Recurring: queryBool(q, "recurring"),
		Tag:       q.Get("tag"),
		StartDate: queryTime(q, "startDate"),
		EndDate:   queryTime(q, "endDate"),
	}
}

func ngoFilterFromQuery(q url.Values) domain.NGOFilter {
	return domain.NGOFilter{
		Country:      q.Get("country"),
		Category:     q.Get("category"),
		Verified:     queryBool(q, "verified"),
		Tag:          q.Get("tag"),
		FoundedAfter: queryTime(q, "foundedAfter"),
		Search:       q.Get("search"),
	}
}
