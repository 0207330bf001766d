package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

// TenantSetting is the session setting row-level security policies read the
// current tenant from.
const TenantSetting = "app.tenant_id"

// Beginner starts transactions. *pgxpool.Pool implements it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
//
// Every transaction it opens is tenant-scoped: when the context carries a
// tenant ID, the transaction sets app.tenant_id for the row-level security
// policies, and when an app role is configured it switches to that role so
// the policies apply even if the pool connects as the table owner.
//
// A RunInTx call inside another RunInTx callback joins the outer transaction.
type TxManager struct {
	db      Beginner
	appRole string
}

// NewTxManager creates a new TxManager. appRole may be empty.
func NewTxManager(db Beginner, appRole string) *TxManager {
	return &TxManager{db: db, appRole: appRole}
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := m.scope(ctx, tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// scope applies the role switch and tenant setting to a fresh transaction.
// Both are transaction-local and vanish on commit or rollback, so pooled
// connections never carry one tenant's scope into another request.
func (m *TxManager) scope(ctx context.Context, tx pgx.Tx) error {
	if m.appRole != "" {
		if _, err := tx.Exec(ctx, "SET LOCAL ROLE "+pgx.Identifier{m.appRole}.Sanitize()); err != nil {
			return fmt.Errorf("set role %s: %w", m.appRole, err)
		}
	}

	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil
	}
	if _, err := tx.Exec(ctx, "SELECT set_config('"+TenantSetting+"', $1, true)", tenantID.String()); err != nil {
		return fmt.Errorf("set tenant scope: %w", err)
	}
	return nil
}
