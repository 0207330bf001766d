// Package tenant resolves authenticated identities to tenants, provisioning
// a tenant the first time an identity is seen.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

type tenantRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Tenant, error)
	Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tenant resolution.
type Service struct {
	tenants tenantRepo
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Tenant service.
func NewService(log *slog.Logger, tenants tenantRepo, tx txManager) *Service {
	return &Service{
		tenants: tenants,
		tx:      tx,
		log:     log.With("service", "tenant"),
		now:     time.Now,
	}
}

// Resolve returns the tenant ID bound to subject, creating the tenant on
// first sight. Concurrent first requests for one subject resolve to the
// same tenant.
func (s *Service) Resolve(ctx context.Context, subject, email string) (uuid.UUID, error) {
	if subject == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}

	var (
		tenant  *domain.Tenant
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.tenants.GetByExternalID(txCtx, subject)
		if err == nil {
			tenant = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get tenant: %w", err)
		}

		fresh, err := domain.NewTenant(subject, email, s.now())
		if err != nil {
			return err
		}
		tenant, err = s.tenants.Create(txCtx, fresh)
		if err != nil {
			return fmt.Errorf("create tenant: %w", err)
		}
		created = tenant.ID == fresh.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if created {
		s.log.InfoContext(ctx, "tenant provisioned",
			slog.String("tenant_id", tenant.ID.String()),
		)
	}
	return tenant.ID, nil
}
