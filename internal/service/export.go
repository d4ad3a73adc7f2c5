package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExportFilename is the download hint sent with CSV responses.
const ExportFilename = "donations.csv"

// Column order is fixed; consumers depend on it.
var csvColumns = []string{
	"donationDate",
	"donorName",
	"donorEmail",
	"amount",
	"currency",
	"method",
	"status",
	"isRecurring",
	"ngoName",
}

// ExportCSV renders every donation, newest first, as delimited text. Unlike
// the joined listing, donations with an unresolved NGO reference are kept and
// their ngoName renders as an empty string.
//
// The format quotes every data field (doubling embedded quotes) while the
// header row stays unquoted, which is why this does not go through
// encoding/csv: that writer quotes only when necessary and treats the header
// like any other row.
func (s *AnalyticsService) ExportCSV(ctx context.Context) (string, error) {
	donations, err := s.donations.ListAllByDateDesc(ctx)
	if err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	refs, err := s.ngoRefs(ctx, ngoIDs(donations))
	if err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}

	lines := make([]string, 0, len(donations)+1)
	lines = append(lines, strings.Join(csvColumns, ","))
	for _, d := range donations {
		ngoName := ""
		if ref, ok := refs[d.NGOID]; ok {
			ngoName = ref.Name
		}
		fields := []string{
			csvQuote(d.DonationDate.UTC().Format(time.RFC3339)),
			csvQuote(d.DonorName),
			csvQuote(d.DonorEmail),
			csvQuote(d.Amount.String()),
			csvQuote(string(d.Currency)),
			csvQuote(string(d.Method)),
			csvQuote(string(d.Status)),
			csvQuote(strconv.FormatBool(d.IsRecurring)),
			csvQuote(ngoName),
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n"), nil
}

func csvQuote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
