package coop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

// Create creates a new active coop for the current tenant.
func (s *Service) Create(ctx context.Context, input CreateInput) result.Result[*domain.Coop] {
	c, err := s.create(ctx, input)
	return result.From(ctx, s.log, c, err)
}

func (s *Service) create(ctx context.Context, input CreateInput) (*domain.Coop, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := domain.NewCoop(tenantID, input.Name, input.Location, s.now())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.coops.Add(txCtx, c); err != nil {
			return fmt.Errorf("add coop: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "coop created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("coop_id", c.ID.String()),
	)
	return c, nil
}

// Get returns a coop of the current tenant.
func (s *Service) Get(ctx context.Context, id uuid.UUID) result.Result[*domain.Coop] {
	c, err := s.get(ctx, id)
	return result.From(ctx, s.log, c, err)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*domain.Coop, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var c *domain.Coop
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		c, err = s.coops.GetByID(txCtx, id)
		return err
	})
	return c, err
}

// List returns the current tenant's coops.
func (s *Service) List(ctx context.Context, input ListInput) result.Result[[]*domain.Coop] {
	coops, err := s.list(ctx, input)
	return result.From(ctx, s.log, coops, err)
}

func (s *Service) list(ctx context.Context, input ListInput) ([]*domain.Coop, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var coops []*domain.Coop
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		coops, err = s.coops.List(txCtx, domain.CoopFilter{IncludeInactive: input.IncludeInactive})
		if err != nil {
			return fmt.Errorf("list coops: %w", err)
		}
		return nil
	})
	return coops, err
}

// Update replaces the name and location of a coop.
func (s *Service) Update(ctx context.Context, input UpdateInput) result.Result[*domain.Coop] {
	c, err := s.mutate(ctx, input.ID, "coop updated", func(c *domain.Coop) error {
		return c.Update(input.Name, input.Location, s.now())
	})
	return result.From(ctx, s.log, c, err)
}

// Deactivate marks a coop inactive.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) result.Result[*domain.Coop] {
	c, err := s.mutate(ctx, id, "coop deactivated", func(c *domain.Coop) error {
		c.Deactivate(s.now())
		return nil
	})
	return result.From(ctx, s.log, c, err)
}

// Reactivate marks a coop active again.
func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) result.Result[*domain.Coop] {
	c, err := s.mutate(ctx, id, "coop reactivated", func(c *domain.Coop) error {
		c.Reactivate(s.now())
		return nil
	})
	return result.From(ctx, s.log, c, err)
}

// mutate loads a coop, applies fn and persists it in one transaction.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, msg string, fn func(c *domain.Coop) error) (*domain.Coop, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var c *domain.Coop
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		c, err = s.coops.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		if err := s.coops.Update(txCtx, c); err != nil {
			return fmt.Errorf("update coop: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, msg,
		slog.String("tenant_id", tenantID.String()),
		slog.String("coop_id", id.String()),
	)
	return c, nil
}

// Delete removes a coop. A coop that still has flocks is refused with a
// validation error on "coop"; deactivate it instead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) result.Result[struct{}] {
	return result.From(ctx, s.log, struct{}{}, s.delete(ctx, id))
}

func (s *Service) delete(ctx context.Context, id uuid.UUID) error {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.coops.GetByID(txCtx, id); err != nil {
			return err
		}
		hasFlocks, err := s.coops.HasFlocks(txCtx, id)
		if err != nil {
			return fmt.Errorf("check coop flocks: %w", err)
		}
		if hasFlocks {
			return domain.NewValidationError("coop", "cannot delete a coop that still has flocks")
		}
		if err := s.coops.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete coop: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "coop deleted",
		slog.String("tenant_id", tenantID.String()),
		slog.String("coop_id", id.String()),
	)
	return nil
}

// SearchNames returns coop names matching q for autocomplete.
func (s *Service) SearchNames(ctx context.Context, q string, limit int) result.Result[[]string] {
	names, err := s.searchNames(ctx, q, limit)
	return result.From(ctx, s.log, names, err)
}

func (s *Service) searchNames(ctx context.Context, q string, limit int) ([]string, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var names []string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		names, err = s.coops.SearchNames(txCtx, q, limit)
		if err != nil {
			return fmt.Errorf("search coop names: %w", err)
		}
		return nil
	})
	return names, err
}
