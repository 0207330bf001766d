package flock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

// Create creates a flock in one of the tenant's coops together with its
// "Initial" history entry.
func (s *Service) Create(ctx context.Context, input CreateInput) result.Result[*domain.Flock] {
	f, err := s.create(ctx, input)
	return result.From(ctx, s.log, f, err)
}

func (s *Service) create(ctx context.Context, input CreateInput) (*domain.Flock, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f, err := domain.NewFlock(domain.FlockParams{
		TenantID:   tenantID,
		CoopID:     input.CoopID,
		Identifier: input.Identifier,
		HatchDate:  input.HatchDate,
		Hens:       input.Hens,
		Roosters:   input.Roosters,
		Chicks:     input.Chicks,
		Notes:      input.Notes,
	}, s.now())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		coop, err := s.coops.GetByID(txCtx, input.CoopID)
		if err != nil {
			return err
		}
		if coop.TenantID != tenantID {
			return domain.NewNotFoundError(domain.EntityTypeCoop, input.CoopID)
		}
		if err := s.flocks.Add(txCtx, f); err != nil {
			return fmt.Errorf("add flock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flock created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("flock_id", f.ID().String()),
		slog.String("coop_id", input.CoopID.String()),
	)
	return f, nil
}

// Get returns a flock with its full history.
func (s *Service) Get(ctx context.Context, id uuid.UUID) result.Result[*domain.Flock] {
	f, err := s.get(ctx, id)
	return result.From(ctx, s.log, f, err)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*domain.Flock, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var f *domain.Flock
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		f, err = s.flocks.GetByID(txCtx, id)
		return err
	})
	return f, err
}

// List returns the tenant's flocks, optionally restricted to one coop.
func (s *Service) List(ctx context.Context, input ListInput) result.Result[[]*domain.Flock] {
	flocks, err := s.list(ctx, input)
	return result.From(ctx, s.log, flocks, err)
}

func (s *Service) list(ctx context.Context, input ListInput) ([]*domain.Flock, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var flocks []*domain.Flock
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		flocks, err = s.flocks.List(txCtx, domain.FlockFilter{
			CoopID:          input.CoopID,
			IncludeInactive: input.IncludeInactive,
		})
		if err != nil {
			return fmt.Errorf("list flocks: %w", err)
		}
		return nil
	})
	return flocks, err
}

// Update changes identifier and hatch date. The ledger is not touched.
func (s *Service) Update(ctx context.Context, input UpdateInput) result.Result[*domain.Flock] {
	f, err := s.mutate(ctx, input.ID, "flock updated", func(f *domain.Flock) error {
		return f.Update(input.Identifier, input.HatchDate, s.now())
	})
	return result.From(ctx, s.log, f, err)
}

// Archive deactivates a flock, keeping its history.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) result.Result[*domain.Flock] {
	f, err := s.mutate(ctx, id, "flock archived", func(f *domain.Flock) error {
		f.Archive(s.now())
		return nil
	})
	return result.From(ctx, s.log, f, err)
}

// Reactivate marks an archived flock active again.
func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) result.Result[*domain.Flock] {
	f, err := s.mutate(ctx, id, "flock reactivated", func(f *domain.Flock) error {
		f.Reactivate(s.now())
		return nil
	})
	return result.From(ctx, s.log, f, err)
}

func (s *Service) mutate(ctx context.Context, id uuid.UUID, msg string, fn func(f *domain.Flock) error) (*domain.Flock, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var f *domain.Flock
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		f, err = s.flocks.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			return err
		}
		if err := s.flocks.Update(txCtx, f); err != nil {
			return fmt.Errorf("update flock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, msg,
		slog.String("tenant_id", tenantID.String()),
		slog.String("flock_id", id.String()),
	)
	return f, nil
}

// SearchNames returns flock identifiers matching q for autocomplete.
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
		names, err = s.flocks.SearchNames(txCtx, q, limit)
		if err != nil {
			return fmt.Errorf("search flock identifiers: %w", err)
		}
		return nil
	})
	return names, err
}
