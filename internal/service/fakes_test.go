package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"charityflow/internal/domain"
)

// In-memory repository fakes backing the service tests.

type fakeDonationRepo struct {
	items []domain.Donation
	err   error
}

func (f *fakeDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, *d)
	return nil
}

func (f *fakeDonationRepo) List(_ context.Context, _ domain.DonationFilter, _ string, _ domain.SortOrder, page domain.Page) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	start := page.Offset()
	if start >= len(f.items) {
		return nil, nil
	}
	end := start + page.Limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return append([]domain.Donation(nil), f.items[start:end]...), nil
}

func (f *fakeDonationRepo) Count(context.Context, domain.DonationFilter) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.items), nil
}

func (f *fakeDonationRepo) GetByID(_ context.Context, id string) (*domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			d := f.items[i]
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDonationRepo) Update(_ context.Context, d *domain.Donation) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == d.ID {
			f.items[i] = *d
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeDonationRepo) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDonationRepo) ListByStatus(_ context.Context, status domain.DonationStatus, start, end *time.Time) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Donation
	for _, d := range f.items {
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

func (f *fakeDonationRepo) ListAllByDateDesc(context.Context) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]domain.Donation(nil), f.items...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DonationDate.After(out[j].DonationDate)
	})
	return out, nil
}

type fakeNGORepo struct {
	items []domain.NGO
	err   error
}

func (f *fakeNGORepo) Create(_ context.Context, n *domain.NGO) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, *n)
	return nil
}

func (f *fakeNGORepo) List(_ context.Context, _ domain.NGOFilter, _ string, _ domain.SortOrder, page domain.Page) ([]domain.NGO, error) {
	if f.err != nil {
		return nil, f.err
	}
	start := page.Offset()
	if start >= len(f.items) {
		return nil, nil
	}
	end := start + page.Limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return append([]domain.NGO(nil), f.items[start:end]...), nil
}

func (f *fakeNGORepo) Count(context.Context, domain.NGOFilter) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.items), nil
}

func (f *fakeNGORepo) GetByID(_ context.Context, id string) (*domain.NGO, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			n := f.items[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNGORepo) Update(_ context.Context, n *domain.NGO) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == n.ID {
			f.items[i] = *n
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNGORepo) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNGORepo) ListByIDs(_ context.Context, ids []string) ([]domain.NGO, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []domain.NGO
	for _, n := range f.items {
		if _, ok := want[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	sends []fakeSend
}

type fakeSend struct {
	to, subject, message string
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, fakeSend{to: to, subject: subject, message: message})
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

var _ domain.DonationRepository = (*fakeDonationRepo)(nil)
var _ domain.NGORepository = (*fakeNGORepo)(nil)
var _ Notifier = (*fakeNotifier)(nil)
