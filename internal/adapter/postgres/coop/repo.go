// Package coop implements the Coop repository using PostgreSQL.
//
// Every statement filters by the tenant from the request context in
// addition to the row-level security policy on the coops table.
package coop

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

// Repo provides coop persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new coop repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "tenant_id", "name", "location", "is_active", "created_at", "updated_at"}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO coops (id, tenant_id, name, location, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const updateSQL = `
UPDATE coops
SET name = $3, location = $4, is_active = $5, updated_at = $6
WHERE id = $1 AND tenant_id = $2`

const deleteSQL = `DELETE FROM coops WHERE id = $1 AND tenant_id = $2`

const hasFlocksSQL = `
SELECT EXISTS (
    SELECT 1 FROM flocks WHERE coop_id = $1 AND tenant_id = $2
)`

type row struct {
	ID        uuid.UUID `db:"id"`
	TenantID  uuid.UUID `db:"tenant_id"`
	Name      string    `db:"name"`
	Location  *string   `db:"location"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Coop {
	return &domain.Coop{
		ID:        r.ID,
		TenantID:  r.TenantID,
		Name:      r.Name,
		Location:  r.Location,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a coop of the current tenant.
// A coop owned by another tenant is reported as not found.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coop, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("coops").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get coop query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeCoop, id)
	}
	return out.toDomain(), nil
}

// List returns the current tenant's coops ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context, filter domain.CoopFilter) ([]*domain.Coop, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder.
		Select(columns...).
		From("coops").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("lower(name)", "id")
	if !filter.IncludeInactive {
		b = b.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list coops query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list coops: %w", err)
	}

	coops := make([]*domain.Coop, len(rows))
	for i, rw := range rows {
		coops[i] = rw.toDomain()
	}
	return coops, nil
}

// HasFlocks reports whether any flock, active or archived, references the coop.
func (r *Repo) HasFlocks(ctx context.Context, id uuid.UUID) (bool, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, hasFlocksSQL, id, tenantID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, domain.EntityTypeCoop, id)
	}
	return exists, nil
}

// SearchNames returns up to limit distinct coop names containing q,
// case-insensitively. An empty query returns an empty slice without touching
// the database.
func (r *Repo) SearchNames(ctx context.Context, q string, limit int) ([]string, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	q = domain.NormalizeSearchQuery(q)
	if q == "" || limit <= 0 {
		return []string{}, nil
	}

	query, args, err := postgres.Builder.
		Select("name").
		Distinct().
		From("coops").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.ILike{"name": postgres.ContainsPattern(q)}).
		OrderBy("name").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search coops query: %w", err)
	}

	names := []string{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names, query, args...); err != nil {
		return nil, fmt.Errorf("search coop names: %w", err)
	}
	return names, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Add inserts a new coop. The coop must belong to the current tenant.
func (r *Repo) Add(ctx context.Context, c *domain.Coop) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}
	if c.TenantID != tenantID {
		return domain.NewNotFoundError(domain.EntityTypeCoop, c.ID)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		c.ID, c.TenantID, c.Name, c.Location, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeCoop, c.ID)
	}
	return nil
}

// Update persists the mutable fields of c.
func (r *Repo) Update(ctx context.Context, c *domain.Coop) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		c.ID, tenantID, c.Name, c.Location, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeCoop, c.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeCoop, c.ID)
	}
	return nil
}

// Delete removes a coop. Callers must check HasFlocks first; a remaining
// reference surfaces as a foreign key violation.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, tenantID)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeCoop, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeCoop, id)
	}
	return nil
}
