package domain

import (
	"context"
	"time"
)

// NGORepository handles NGO persistence.
type NGORepository interface {
	Create(ctx context.Context, ngo *NGO) error
	List(ctx context.Context, filter NGOFilter, sortField string, order SortOrder, page Page) ([]NGO, error)
	Count(ctx context.Context, filter NGOFilter) (int, error)
	GetByID(ctx context.Context, id string) (*NGO, error)
	Update(ctx context.Context, ngo *NGO) error
	// Delete reports whether a record was removed. Donations referencing the
	// deleted NGO are left untouched.
	Delete(ctx context.Context, id string) (bool, error)
	ListByIDs(ctx context.Context, ids []string) ([]NGO, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context, filter DonationFilter, sortField string, order SortOrder, page Page) ([]Donation, error)
	Count(ctx context.Context, filter DonationFilter) (int, error)
	GetByID(ctx context.Context, id string) (*Donation, error)
	Update(ctx context.Context, donation *Donation) error
	Delete(ctx context.Context, id string) (bool, error)
	// ListByStatus returns donations in the given status with an optional
	// inclusive donation-date range, for the aggregation views.
	ListByStatus(ctx context.Context, status DonationStatus, start, end *time.Time) ([]Donation, error)
	// ListAllByDateDesc returns every donation ordered by donation date
	// descending, for the joined listing and CSV export.
	ListAllByDateDesc(ctx context.Context) ([]Donation, error)
}
