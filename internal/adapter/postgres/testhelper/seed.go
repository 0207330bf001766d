package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// TenantCtx returns a background context scoped to tenantID.
func TenantCtx(tenantID uuid.UUID) context.Context {
	return ctxutil.WithTenantID(context.Background(), tenantID)
}

// SeedTenant creates a tenant with a unique external ID.
func SeedTenant(t *testing.T, pool *pgxpool.Pool) domain.Tenant {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tenant := domain.Tenant{
		ID:         uuid.New(),
		ExternalID: "sub-" + suffix,
		Email:      "keeper-" + suffix + "@example.com",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tenants (id, external_id, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tenant.ID, tenant.ExternalID, tenant.Email, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTenant: %v", err)
	}

	return tenant
}

// SeedCoop creates an active coop owned by tenantID. The insert runs as the
// pool's superuser and bypasses row-level security.
func SeedCoop(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID) domain.Coop {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	coop := domain.Coop{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      "Coop " + uniqueSuffix(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO coops (id, tenant_id, name, location, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		coop.ID, coop.TenantID, coop.Name, coop.Location, coop.IsActive, coop.CreatedAt, coop.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCoop: %v", err)
	}

	return coop
}

// SeedFlock creates a flock of 10 hens in coopID together with its
// "Initial" history entry.
func SeedFlock(t *testing.T, pool *pgxpool.Pool, tenantID, coopID uuid.UUID) *domain.Flock {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	f, err := domain.NewFlock(domain.FlockParams{
		TenantID:   tenantID,
		CoopID:     coopID,
		Identifier: "Flock " + uniqueSuffix(),
		HatchDate:  now.AddDate(0, -3, 0),
		Hens:       10,
	}, now)
	if err != nil {
		t.Fatalf("testhelper: SeedFlock build: %v", err)
	}

	ctx := context.Background()
	rec := f.Record()
	_, err = pool.Exec(ctx,
		`INSERT INTO flocks (id, tenant_id, coop_id, identifier, hatch_date, hens, roosters, chicks, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.TenantID, rec.CoopID, rec.Identifier, rec.HatchDate,
		rec.Hens, rec.Roosters, rec.Chicks, rec.IsActive, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlock insert flock: %v", err)
	}

	h := f.History()[0].Record()
	_, err = pool.Exec(ctx,
		`INSERT INTO flock_history (id, tenant_id, flock_id, change_date, hens, roosters, chicks, reason, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		h.ID, h.TenantID, h.FlockID, h.ChangeDate, h.Hens, h.Roosters, h.Chicks, h.Reason, h.Notes, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlock insert history: %v", err)
	}

	return f
}
