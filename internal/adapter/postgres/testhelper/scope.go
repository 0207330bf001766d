package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres"
)

// Scoped runs fn in a transaction scoped to tenantID under AppRole, the way
// services call repositories. Both the repositories' tenant filter and the
// row-level security policies are active inside fn.
func Scoped(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, fn func(ctx context.Context) error) error {
	t.Helper()
	return postgres.NewTxManager(pool, AppRole).RunInTx(TenantCtx(tenantID), fn)
}
