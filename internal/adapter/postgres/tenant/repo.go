// Package tenant implements the Tenant repository using PostgreSQL.
//
// The tenants table is the root of isolation and is not itself covered by
// row-level security: it is read before any tenant scope exists.
package tenant

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

// Repo provides tenant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tenant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const tenantColumns = `id, external_id, email, created_at, updated_at`

const getByExternalIDSQL = `
SELECT ` + tenantColumns + `
FROM tenants
WHERE external_id = $1`

// On conflict the existing row is returned unchanged, so two first requests
// racing for the same subject resolve to one tenant.
const upsertSQL = `
INSERT INTO tenants (id, external_id, email, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (external_id) DO UPDATE SET external_id = tenants.external_id
RETURNING ` + tenantColumns

type row struct {
	ID         uuid.UUID `db:"id"`
	ExternalID string    `db:"external_id"`
	Email      string    `db:"email"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:         r.ID,
		ExternalID: r.ExternalID,
		Email:      r.Email,
		CreatedAt:  r.CreatedAt.UTC(),
		UpdatedAt:  r.UpdatedAt.UTC(),
	}
}

// GetByExternalID returns the tenant bound to an identity-provider subject.
// Returns a domain.NotFoundError when no tenant exists yet.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.Tenant, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, getByExternalIDSQL, externalID)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeTenant, uuid.Nil)
	}
	return out.toDomain(), nil
}

// Create inserts t, or returns the tenant that already owns t.ExternalID.
func (r *Repo) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, upsertSQL,
		t.ID, t.ExternalID, t.Email, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeTenant, t.ID)
	}
	return out.toDomain(), nil
}
