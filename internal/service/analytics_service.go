package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"charityflow/internal/domain"
)

// AnalyticsService computes the grouped reporting views. Sums are exact
// decimal arithmetic; the analytics views only count completed donations.
type AnalyticsService struct {
	donations domain.DonationRepository
	ngos      domain.NGORepository
}

func NewAnalyticsService(donations domain.DonationRepository, ngos domain.NGORepository) *AnalyticsService {
	return &AnalyticsService{donations: donations, ngos: ngos}
}

// ByNGO groups completed donations per NGO, joined with the NGO's name,
// country and category. Donations whose NGO no longer exists are dropped.
// Rows are ordered by summed amount descending.
func (s *AnalyticsService) ByNGO(ctx context.Context) ([]domain.NGOSummary, error) {
	donations, err := s.donations.ListByStatus(ctx, domain.StatusCompleted, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics by ngo: %w", err)
	}

	type group struct {
		total decimal.Decimal
		count int
	}
	groups := make(map[string]*group)
	ids := make([]string, 0)
	for _, d := range donations {
		g, ok := groups[d.NGOID]
		if !ok {
			g = &group{}
			groups[d.NGOID] = g
			ids = append(ids, d.NGOID)
		}
		g.total = g.total.Add(d.Amount)
		g.count++
	}

	refs, err := s.ngoRefs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("analytics by ngo: %w", err)
	}

	rows := make([]domain.NGOSummary, 0, len(groups))
	for id, g := range groups {
		ref, ok := refs[id]
		if !ok {
			continue
		}
		rows = append(rows, domain.NGOSummary{
			NGOID:       id,
			NGOName:     ref.Name,
			Country:     ref.Country,
			Category:    ref.Category,
			TotalAmount: g.total,
			Count:       g.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].TotalAmount.Cmp(rows[j].TotalAmount); c != 0 {
			return c > 0
		}
		return rows[i].NGOID < rows[j].NGOID
	})
	return rows, nil
}

// ByMethod groups completed donations per payment method, ordered by summed
// amount descending.
func (s *AnalyticsService) ByMethod(ctx context.Context) ([]domain.MethodSummary, error) {
	donations, err := s.donations.ListByStatus(ctx, domain.StatusCompleted, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics by method: %w", err)
	}

	idx := make(map[domain.DonationMethod]int)
	rows := make([]domain.MethodSummary, 0, 4)
	for _, d := range donations {
		i, ok := idx[d.Method]
		if !ok {
			i = len(rows)
			idx[d.Method] = i
			rows = append(rows, domain.MethodSummary{Method: d.Method})
		}
		rows[i].TotalAmount = rows[i].TotalAmount.Add(d.Amount)
		rows[i].Count++
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].TotalAmount.Cmp(rows[j].TotalAmount); c != 0 {
			return c > 0
		}
		return rows[i].Method < rows[j].Method
	})
	return rows, nil
}

// Daily groups completed donations by UTC calendar day within the optional
// inclusive date range, ordered by day ascending.
func (s *AnalyticsService) Daily(ctx context.Context, start, end *time.Time) ([]domain.DailySummary, error) {
	donations, err := s.donations.ListByStatus(ctx, domain.StatusCompleted, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics daily: %w", err)
	}

	idx := make(map[string]int)
	rows := make([]domain.DailySummary, 0)
	for _, d := range donations {
		day := d.DonationDate.UTC().Format("2006-01-02")
		i, ok := idx[day]
		if !ok {
			i = len(rows)
			idx[day] = i
			rows = append(rows, domain.DailySummary{Day: day})
		}
		rows[i].TotalAmount = rows[i].TotalAmount.Add(d.Amount)
		rows[i].Count++
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	return rows, nil
}

// Joined lists every donation together with its NGO, newest donation first.
// Inner-join semantics: donations with an unresolved reference are dropped.
func (s *AnalyticsService) Joined(ctx context.Context) ([]domain.JoinedDonation, error) {
	donations, err := s.donations.ListAllByDateDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("joined listing: %w", err)
	}

	refs, err := s.ngoRefs(ctx, ngoIDs(donations))
	if err != nil {
		return nil, fmt.Errorf("joined listing: %w", err)
	}

	rows := make([]domain.JoinedDonation, 0, len(donations))
	for _, d := range donations {
		ref, ok := refs[d.NGOID]
		if !ok {
			continue
		}
		rows = append(rows, domain.JoinedDonation{Donation: d, NGO: ref})
	}
	return rows, nil
}

func (s *AnalyticsService) ngoRefs(ctx context.Context, ids []string) (map[string]domain.NGORef, error) {
	refs := make(map[string]domain.NGORef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	ngos, err := s.ngos.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, n := range ngos {
		refs[n.ID] = domain.NGORef{
			ID:         n.ID,
			Name:       n.Name,
			Country:    n.Country,
			Category:   n.Category,
			IsVerified: n.IsVerified,
		}
	}
	return refs, nil
}

func ngoIDs(donations []domain.Donation) []string {
	seen := make(map[string]struct{}, len(donations))
	ids := make([]string, 0, len(donations))
	for _, d := range donations {
		if _, ok := seen[d.NGOID]; ok {
			continue
		}
		seen[d.NGOID] = struct{}{}
		ids = append(ids, d.NGOID)
	}
	return ids
}
