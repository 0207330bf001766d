package purchase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

// Create records a new purchase.
func (s *Service) Create(ctx context.Context, input Input) result.Result[*domain.Purchase] {
	p, err := s.create(ctx, input)
	return result.From(ctx, s.log, p, err)
}

func (s *Service) create(ctx context.Context, input Input) (*domain.Purchase, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := domain.NewPurchase(input.params(tenantID), s.now())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkCoop(txCtx, tenantID, p.CoopID); err != nil {
			return err
		}
		if err := s.purchases.Add(txCtx, p); err != nil {
			return fmt.Errorf("add purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "purchase created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("purchase_id", p.ID.String()),
		slog.String("type", p.Type.String()),
	)
	return p, nil
}

// Get returns one purchase.
func (s *Service) Get(ctx context.Context, id uuid.UUID) result.Result[*domain.Purchase] {
	p, err := s.get(ctx, id)
	return result.From(ctx, s.log, p, err)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var p *domain.Purchase
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.purchases.GetByID(txCtx, id)
		return err
	})
	return p, err
}

// List returns purchases newest purchase date first.
func (s *Service) List(ctx context.Context, input ListInput) result.Result[[]*domain.Purchase] {
	ps, err := s.list(ctx, input)
	return result.From(ctx, s.log, ps, err)
}

func (s *Service) list(ctx context.Context, input ListInput) ([]*domain.Purchase, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domain.NewValidationError("type", "unknown purchase type")
	}
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}

	var ps []*domain.Purchase
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		ps, err = s.purchases.List(txCtx, domain.PurchaseFilter{
			Type:   input.Type,
			CoopID: input.CoopID,
			From:   input.From,
			To:     input.To,
		})
		if err != nil {
			return fmt.Errorf("list purchases: %w", err)
		}
		return nil
	})
	return ps, err
}

// Update replaces every mutable field of a purchase.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) result.Result[*domain.Purchase] {
	p, err := s.update(ctx, id, input)
	return result.From(ctx, s.log, p, err)
}

func (s *Service) update(ctx context.Context, id uuid.UUID, input Input) (*domain.Purchase, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var p *domain.Purchase
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.purchases.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := p.Update(input.params(tenantID), s.now()); err != nil {
			return err
		}
		if err := s.checkCoop(txCtx, tenantID, p.CoopID); err != nil {
			return err
		}
		if err := s.purchases.Update(txCtx, p); err != nil {
			return fmt.Errorf("update purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "purchase updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("purchase_id", id.String()),
	)
	return p, nil
}

// MarkConsumed records the day a purchase was used up. Other fields are
// left as stored.
func (s *Service) MarkConsumed(ctx context.Context, id uuid.UUID, date time.Time) result.Result[*domain.Purchase] {
	p, err := s.markConsumed(ctx, id, date)
	return result.From(ctx, s.log, p, err)
}

func (s *Service) markConsumed(ctx context.Context, id uuid.UUID, date time.Time) (*domain.Purchase, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var p *domain.Purchase
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.purchases.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := p.MarkConsumed(date, s.now()); err != nil {
			return err
		}
		if err := s.purchases.Update(txCtx, p); err != nil {
			return fmt.Errorf("mark purchase consumed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "purchase consumed",
		slog.String("tenant_id", tenantID.String()),
		slog.String("purchase_id", id.String()),
		slog.String("consumed_date", p.ConsumedDate.Format(time.DateOnly)),
	)
	return p, nil
}

// Delete removes a purchase.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) result.Result[struct{}] {
	return result.From(ctx, s.log, struct{}{}, s.delete(ctx, id))
}

func (s *Service) delete(ctx context.Context, id uuid.UUID) error {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.purchases.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "purchase deleted",
		slog.String("tenant_id", tenantID.String()),
		slog.String("purchase_id", id.String()),
	)
	return nil
}

// SearchNames returns distinct purchase names matching q for autocomplete.
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
		names, err = s.purchases.SearchNames(txCtx, q, limit)
		if err != nil {
			return fmt.Errorf("search purchase names: %w", err)
		}
		return nil
	})
	return names, err
}

// checkCoop verifies that an assigned coop exists for the tenant.
func (s *Service) checkCoop(ctx context.Context, tenantID uuid.UUID, coopID *uuid.UUID) error {
	if coopID == nil {
		return nil
	}
	c, err := s.coops.GetByID(ctx, *coopID)
	if err != nil {
		return err
	}
	if c.TenantID != tenantID {
		return domain.NewNotFoundError(domain.EntityTypeCoop, *coopID)
	}
	return nil
}
