package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"charityflow/internal/domain"
)

// DonationRepositoryPG implements DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// amount is selected as text so decimal values never pass through a float.
const donationColumns = `id, donor_name, method, amount::text, donation_date, is_recurring,
tags, receipt_urls, meta, donor_email, ngo_id, status, currency, allocation, created_at, updated_at`

var donationSortColumns = map[string]string{
	"donationDate": "donation_date",
	"amount":       "amount",
	"donorName":    "donor_name",
	"status":       "status",
	"createdAt":    "created_at",
}

// Create inserts a new donation record.
func (r *DonationRepositoryPG) Create(ctx context.Context, d *domain.Donation) error {
	meta, allocation, err := marshalDonationJSON(d)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO donations (id, donor_name, method, amount, donation_date, is_recurring,
    tags, receipt_urls, meta, donor_email, ngo_id, status, currency, allocation, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
`, d.ID, d.DonorName, d.Method, d.Amount.String(), d.DonationDate, d.IsRecurring,
		d.Tags, d.ReceiptURLs, meta, d.DonorEmail, d.NGOID, d.Status, d.Currency, allocation,
		d.CreatedAt, d.UpdatedAt)
	return err
}

// List returns the page of donations matching the filter. The sort field must
// already be resolved against the domain allowlist.
func (r *DonationRepositoryPG) List(ctx context.Context, filter domain.DonationFilter, sortField string, order domain.SortOrder, page domain.Page) ([]domain.Donation, error) {
	conds, args := donationPredicates(filter)
	query := fmt.Sprintf(`SELECT %s FROM donations%s ORDER BY %s %s LIMIT $%d OFFSET $%d;`,
		donationColumns, whereClause(conds), sortColumn(donationSortColumns, sortField, "donation_date"),
		sqlDirection(order), len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

// Count returns the number of donations matching the filter.
func (r *DonationRepositoryPG) Count(ctx context.Context, filter domain.DonationFilter) (int, error) {
	conds, args := donationPredicates(filter)
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM donations`+whereClause(conds)+`;`, args...).Scan(&count)
	return count, err
}

// GetByID fetches a single donation.
func (r *DonationRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+donationColumns+` FROM donations WHERE id = $1;`, id)
	d, err := scanDonation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Update overwrites the full record (last write wins).
func (r *DonationRepositoryPG) Update(ctx context.Context, d *domain.Donation) error {
	meta, allocation, err := marshalDonationJSON(d)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE donations SET donor_name = $2, method = $3, amount = $4, donation_date = $5,
    is_recurring = $6, tags = $7, receipt_urls = $8, meta = $9, donor_email = $10,
    ngo_id = $11, status = $12, currency = $13, allocation = $14, updated_at = $15
WHERE id = $1;
`, d.ID, d.DonorName, d.Method, d.Amount.String(), d.DonationDate, d.IsRecurring,
		d.Tags, d.ReceiptURLs, meta, d.DonorEmail, d.NGOID, d.Status, d.Currency, allocation,
		d.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the donation and reports whether it existed.
func (r *DonationRepositoryPG) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM donations WHERE id = $1;`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByStatus feeds the aggregation views.
func (r *DonationRepositoryPG) ListByStatus(ctx context.Context, status domain.DonationStatus, start, end *time.Time) ([]domain.Donation, error) {
	conds := []string{"status = $1"}
	args := []any{status}
	if start != nil {
		args = append(args, *start)
		conds = append(conds, fmt.Sprintf("donation_date >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		conds = append(conds, fmt.Sprintf("donation_date <= $%d", len(args)))
	}
	query := `SELECT ` + donationColumns + ` FROM donations WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY donation_date ASC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

// ListAllByDateDesc feeds the joined listing and the CSV export.
func (r *DonationRepositoryPG) ListAllByDateDesc(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+donationColumns+` FROM donations ORDER BY donation_date DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

// donationPredicates translates the filter into AND-ed SQL conditions with
// positional args. Unset criteria contribute nothing.
func donationPredicates(f domain.DonationFilter) ([]string, []any) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if f.NGOID != "" {
		add("ngo_id = $%d", f.NGOID)
	}
	if f.Method != "" {
		add("method = $%d", f.Method)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.MinAmount != nil {
		add("amount >= $%d", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		add("amount <= $%d", f.MaxAmount.String())
	}
	if f.Recurring != nil {
		add("is_recurring = $%d", *f.Recurring)
	}
	if f.Tag != "" {
		add("$%d = ANY(tags)", f.Tag)
	}
	if f.StartDate != nil {
		add("donation_date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("donation_date <= $%d", *f.EndDate)
	}
	return conds, args
}

func marshalDonationJSON(d *domain.Donation) (meta, allocation []byte, err error) {
	meta, err = json.Marshal(d.Meta)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal meta: %w", err)
	}
	allocation, err = json.Marshal(d.Allocation)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal allocation: %w", err)
	}
	return meta, allocation, nil
}

func scanDonations(rows pgx.Rows) ([]domain.Donation, error) {
	var items []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	var amount string
	var meta, allocation []byte
	if err := row.Scan(&d.ID, &d.DonorName, &d.Method, &amount, &d.DonationDate, &d.IsRecurring,
		&d.Tags, &d.ReceiptURLs, &meta, &d.DonorEmail, &d.NGOID, &d.Status, &d.Currency,
		&allocation, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if err := d.Amount.Scan(amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &d.Meta); err != nil {
			return nil, fmt.Errorf("unmarshal meta: %w", err)
		}
	}
	if len(allocation) > 0 {
		if err := json.Unmarshal(allocation, &d.Allocation); err != nil {
			return nil, fmt.Errorf("unmarshal allocation: %w", err)
		}
	}
	return &d, nil
}
