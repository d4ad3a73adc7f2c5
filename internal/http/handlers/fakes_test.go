package handlers_test

import (
	"context"
	"sort"
	"time"

	"charityflow/internal/domain"
)

// In-memory repositories backing the handler tests. They implement enough of
// the storage contract for the routes under test: pagination windows, id
// lookups, and the analytics listings.

type memDonationRepo struct {
	items []domain.Donation
}

func (m *memDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	m.items = append(m.items, *d)
	return nil
}

func (m *memDonationRepo) List(_ context.Context, _ domain.DonationFilter, _ string, _ domain.SortOrder, page domain.Page) ([]domain.Donation, error) {
	start := page.Offset()
	if start >= len(m.items) {
		return nil, nil
	}
	end := start + page.Limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return append([]domain.Donation(nil), m.items[start:end]...), nil
}

func (m *memDonationRepo) Count(context.Context, domain.DonationFilter) (int, error) {
	return len(m.items), nil
}

func (m *memDonationRepo) GetByID(_ context.Context, id string) (*domain.Donation, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			d := m.items[i]
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memDonationRepo) Update(_ context.Context, d *domain.Donation) error {
	for i := range m.items {
		if m.items[i].ID == d.ID {
			m.items[i] = *d
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memDonationRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memDonationRepo) ListByStatus(_ context.Context, status domain.DonationStatus, start, end *time.Time) ([]domain.Donation, error) {
	var out []domain.Donation
	for _, d := range m.items {
		if d.Status != status {
			continue
		}
		if start != nil && d.DonationDate.Before(*start) {
			continue
		}
		if end != nil && d.DonationDate.After(*end) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memDonationRepo) ListAllByDateDesc(context.Context) ([]domain.Donation, error) {
	out := append([]domain.Donation(nil), m.items...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DonationDate.After(out[j].DonationDate)
	})
	return out, nil
}

type memNGORepo struct {
	items []domain.NGO
}

func (m *memNGORepo) Create(_ context.Context, n *domain.NGO) error {
	m.items = append(m.items, *n)
	return nil
}

func (m *memNGORepo) List(_ context.Context, _ domain.NGOFilter, _ string, _ domain.SortOrder, page domain.Page) ([]domain.NGO, error) {
	start := page.Offset()
	if start >= len(m.items) {
		return nil, nil
	}
	end := start + page.Limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return append([]domain.NGO(nil), m.items[start:end]...), nil
}

func (m *memNGORepo) Count(context.Context, domain.NGOFilter) (int, error) {
	return len(m.items), nil
}

func (m *memNGORepo) GetByID(_ context.Context, id string) (*domain.NGO, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			n := m.items[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memNGORepo) Update(_ context.Context, n *domain.NGO) error {
	for i := range m.items {
		if m.items[i].ID == n.ID {
			m.items[i] = *n
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memNGORepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memNGORepo) ListByIDs(_ context.Context, ids []string) ([]domain.NGO, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []domain.NGO
	for _, n := range m.items {
		if _, ok := want[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

type noopNotifier struct{}

func (noopNotifier) Send(context.Context, string, string, string) {}

var _ domain.DonationRepository = (*memDonationRepo)(nil)
var _ domain.NGORepository = (*memNGORepo)(nil)
