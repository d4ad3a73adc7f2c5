package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charityflow/internal/domain"
)

// Notifier delivers best-effort notifications. Implementations log their own
// failures; nothing ever propagates back to the request path.
type Notifier interface {
	Send(ctx context.Context, to, subject, message string)
}

// DonationService orchestrates donation writes and reads around the
// validation rules and the storage collaborator.
type DonationService struct {
	donations domain.DonationRepository
	notifier  Notifier
	logger    zerolog.Logger
	now       func() time.Time
}

func NewDonationService(donations domain.DonationRepository, notifier Notifier, logger zerolog.Logger) *DonationService {
	return &DonationService{
		donations: donations,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Create validates, normalizes and persists a new donation, then thanks the
// donor by email in the background.
func (s *DonationService) Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	d.ApplyDefaults()
	d.Normalize()
	if errs := domain.ValidateDonation(d, s.now().UTC()); errs != nil {
		return nil, errs
	}

	now := s.now().UTC()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.donations.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	if s.notifier != nil {
		subject := "Thank you for your donation"
		message := fmt.Sprintf("We received your %s %s donation. Thank you, %s!",
			d.Amount.String(), d.Currency, d.DonorName)
		go s.notifier.Send(context.WithoutCancel(ctx), d.DonorEmail, subject, message)
	}

	return d, nil
}

// List returns the filtered page plus the total number of matching records.
func (s *DonationService) List(ctx context.Context, filter domain.DonationFilter, sortField string, order domain.SortOrder, page domain.Page) ([]domain.Donation, int, error) {
	field := domain.DonationSortField(sortField)
	items, err := s.donations.List(ctx, filter, field, order, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list donations: %w", err)
	}
	total, err := s.donations.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count donations: %w", err)
	}
	return items, total, nil
}

func (s *DonationService) Get(ctx context.Context, id string) (*domain.Donation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	return s.donations.GetByID(ctx, id)
}

// Update applies a partial patch and re-runs full validation against the
// merged record before saving.
func (s *DonationService) Update(ctx context.Context, id string, patch domain.DonationPatch) (*domain.Donation, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	existing.Normalize()
	if errs := domain.ValidateDonation(existing, s.now().UTC()); errs != nil {
		return nil, errs
	}

	existing.UpdatedAt = s.now().UTC()
	if err := s.donations.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update donation: %w", err)
	}
	return existing, nil
}

func (s *DonationService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrMalformedID
	}
	deleted, err := s.donations.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
