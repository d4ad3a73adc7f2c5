package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charityflow/internal/domain"
)

// NGOService orchestrates NGO writes and reads.
type NGOService struct {
	ngos   domain.NGORepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewNGOService(ngos domain.NGORepository, logger zerolog.Logger) *NGOService {
	return &NGOService{ngos: ngos, logger: logger, now: time.Now}
}

func (s *NGOService) Create(ctx context.Context, n *domain.NGO) (*domain.NGO, error) {
	n.Normalize()
	if errs := domain.ValidateNGO(n); errs != nil {
		return nil, errs
	}

	now := s.now().UTC()
	n.ID = uuid.NewString()
	n.CreatedAt = now
	n.UpdatedAt = now

	if err := s.ngos.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create ngo: %w", err)
	}
	return n, nil
}

func (s *NGOService) List(ctx context.Context, filter domain.NGOFilter, sortField string, order domain.SortOrder, page domain.Page) ([]domain.NGO, int, error) {
	field := domain.NGOSortField(sortField)
	items, err := s.ngos.List(ctx, filter, field, order, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list ngos: %w", err)
	}
	total, err := s.ngos.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count ngos: %w", err)
	}
	return items, total, nil
}

func (s *NGOService) Get(ctx context.Context, id string) (*domain.NGO, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	return s.ngos.GetByID(ctx, id)
}

// Update applies a partial patch and re-runs full validation against the
// merged record before saving.
func (s *NGOService) Update(ctx context.Context, id string, patch domain.NGOPatch) (*domain.NGO, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	existing.Normalize()
	if errs := domain.ValidateNGO(existing); errs != nil {
		return nil, errs
	}

	existing.UpdatedAt = s.now().UTC()
	if err := s.ngos.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update ngo: %w", err)
	}
	return existing, nil
}

// Delete removes the NGO only. Donations keep their reference; orphaned
// references are tolerated by every downstream view.
func (s *NGOService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrMalformedID
	}
	deleted, err := s.ngos.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete ngo: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
