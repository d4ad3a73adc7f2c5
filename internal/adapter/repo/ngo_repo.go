package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"charityflow/internal/domain"
)

// NGORepositoryPG implements NGORepository using PostgreSQL.
type NGORepositoryPG struct {
	pool *pgxpool.Pool
}

// NewNGORepository creates a new NGO repo.
func NewNGORepository(pool *pgxpool.Pool) *NGORepositoryPG {
	return &NGORepositoryPG{pool: pool}
}

const ngoColumns = `id, name, country, category, is_verified, founded_at, tags,
contact, social_links, metrics, programs, service_areas, created_at, updated_at`

var ngoSortColumns = map[string]string{
	"name":      "name",
	"country":   "country",
	"category":  "category",
	"foundedAt": "founded_at",
	"createdAt": "created_at",
}

// Create inserts a new NGO record.
func (r *NGORepositoryPG) Create(ctx context.Context, n *domain.NGO) error {
	contact, social, metrics, err := marshalNGOJSON(n)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO ngos (id, name, country, category, is_verified, founded_at, tags,
    contact, social_links, metrics, programs, service_areas, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`, n.ID, n.Name, n.Country, n.Category, n.IsVerified, n.FoundedAt, n.Tags,
		contact, social, metrics, n.Programs, n.ServiceAreas, n.CreatedAt, n.UpdatedAt)
	return err
}

// List returns the page of NGOs matching the filter. The sort field must
// already be resolved against the domain allowlist.
func (r *NGORepositoryPG) List(ctx context.Context, filter domain.NGOFilter, sortField string, order domain.SortOrder, page domain.Page) ([]domain.NGO, error) {
	conds, args := ngoPredicates(filter)
	query := fmt.Sprintf(`SELECT %s FROM ngos%s ORDER BY %s %s LIMIT $%d OFFSET $%d;`,
		ngoColumns, whereClause(conds), sortColumn(ngoSortColumns, sortField, "created_at"),
		sqlDirection(order), len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNGOs(rows)
}

// Count returns the number of NGOs matching the filter.
func (r *NGORepositoryPG) Count(ctx context.Context, filter domain.NGOFilter) (int, error) {
	conds, args := ngoPredicates(filter)
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ngos`+whereClause(conds)+`;`, args...).Scan(&count)
	return count, err
}

// GetByID fetches a single NGO.
func (r *NGORepositoryPG) GetByID(ctx context.Context, id string) (*domain.NGO, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ngoColumns+` FROM ngos WHERE id = $1;`, id)
	n, err := scanNGO(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Update overwrites the full record (last write wins).
func (r *NGORepositoryPG) Update(ctx context.Context, n *domain.NGO) error {
	contact, social, metrics, err := marshalNGOJSON(n)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE ngos SET name = $2, country = $3, category = $4, is_verified = $5, founded_at = $6,
    tags = $7, contact = $8, social_links = $9, metrics = $10, programs = $11,
    service_areas = $12, updated_at = $13
WHERE id = $1;
`, n.ID, n.Name, n.Country, n.Category, n.IsVerified, n.FoundedAt, n.Tags,
		contact, social, metrics, n.Programs, n.ServiceAreas, n.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the NGO only; donations keep their (now orphaned) reference.
func (r *NGORepositoryPG) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ngos WHERE id = $1;`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByIDs fetches the NGOs referenced by a donation set, for joins.
func (r *NGORepositoryPG) ListByIDs(ctx context.Context, ids []string) ([]domain.NGO, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+ngoColumns+` FROM ngos WHERE id = ANY($1);`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNGOs(rows)
}

// ngoPredicates translates the filter into AND-ed SQL conditions with
// positional args. Country is a case-insensitive exact match, search a
// case-insensitive name substring.
func ngoPredicates(f domain.NGOFilter) ([]string, []any) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if f.Country != "" {
		add("LOWER(country) = LOWER($%d)", f.Country)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Verified != nil {
		add("is_verified = $%d", *f.Verified)
	}
	if f.Tag != "" {
		add("$%d = ANY(tags)", f.Tag)
	}
	if f.FoundedAfter != nil {
		add("founded_at >= $%d", *f.FoundedAfter)
	}
	if f.Search != "" {
		add("name ILIKE $%d", "%"+escapeLike(f.Search)+"%")
	}
	return conds, args
}

func marshalNGOJSON(n *domain.NGO) (contact, social, metrics []byte, err error) {
	contact, err = json.Marshal(n.Contact)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal contact: %w", err)
	}
	social, err = json.Marshal(n.SocialLinks)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal social links: %w", err)
	}
	metrics, err = json.Marshal(n.Metrics)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal metrics: %w", err)
	}
	return contact, social, metrics, nil
}

func scanNGOs(rows pgx.Rows) ([]domain.NGO, error) {
	var items []domain.NGO
	for rows.Next() {
		n, err := scanNGO(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanNGO(row pgx.Row) (*domain.NGO, error) {
	var n domain.NGO
	var contact, social, metrics []byte
	if err := row.Scan(&n.ID, &n.Name, &n.Country, &n.Category, &n.IsVerified, &n.FoundedAt,
		&n.Tags, &contact, &social, &metrics, &n.Programs, &n.ServiceAreas,
		&n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &n.Contact); err != nil {
			return nil, fmt.Errorf("unmarshal contact: %w", err)
		}
	}
	if len(social) > 0 {
		if err := json.Unmarshal(social, &n.SocialLinks); err != nil {
			return nil, fmt.Errorf("unmarshal social links: %w", err)
		}
	}
	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &n.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics: %w", err)
		}
	}
	return &n, nil
}
