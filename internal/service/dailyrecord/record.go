package dailyrecord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

// Create records the egg count of one flock for one day.
func (s *Service) Create(ctx context.Context, input CreateInput) result.Result[*domain.DailyRecord] {
	rec, err := s.create(ctx, input)
	return result.From(ctx, s.log, rec, err)
}

func (s *Service) create(ctx context.Context, input CreateInput) (*domain.DailyRecord, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := domain.NewDailyRecord(tenantID, input.FlockID, input.RecordDate, input.EggCount, input.Notes, s.now())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		f, err := s.flocks.GetByID(txCtx, input.FlockID)
		if err != nil {
			return err
		}
		if f.TenantID() != tenantID {
			return domain.NewNotFoundError(domain.EntityTypeFlock, input.FlockID)
		}
		if err := s.records.Add(txCtx, rec); err != nil {
			return fmt.Errorf("add daily record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "daily record created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("record_id", rec.ID.String()),
		slog.String("flock_id", input.FlockID.String()),
	)
	return rec, nil
}

// Get returns one daily record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) result.Result[*domain.DailyRecord] {
	rec, err := s.get(ctx, id)
	return result.From(ctx, s.log, rec, err)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*domain.DailyRecord, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var rec *domain.DailyRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rec, err = s.records.GetByID(txCtx, id)
		return err
	})
	return rec, err
}

// List returns daily records newest day first.
func (s *Service) List(ctx context.Context, input ListInput) result.Result[[]*domain.DailyRecord] {
	recs, err := s.list(ctx, input)
	return result.From(ctx, s.log, recs, err)
}

func (s *Service) list(ctx context.Context, input ListInput) ([]*domain.DailyRecord, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}

	var recs []*domain.DailyRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		recs, err = s.records.List(txCtx, domain.DailyRecordFilter{
			FlockID: input.FlockID,
			From:    input.From,
			To:      input.To,
		})
		if err != nil {
			return fmt.Errorf("list daily records: %w", err)
		}
		return nil
	})
	return recs, err
}

// Update corrects the egg count and notes of a record.
func (s *Service) Update(ctx context.Context, input UpdateInput) result.Result[*domain.DailyRecord] {
	rec, err := s.update(ctx, input)
	return result.From(ctx, s.log, rec, err)
}

func (s *Service) update(ctx context.Context, input UpdateInput) (*domain.DailyRecord, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var rec *domain.DailyRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rec, err = s.records.GetByID(txCtx, input.ID)
		if err != nil {
			return err
		}
		if err := rec.Update(input.EggCount, input.Notes, s.now()); err != nil {
			return err
		}
		if err := s.records.Update(txCtx, rec); err != nil {
			return fmt.Errorf("update daily record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "daily record updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("record_id", input.ID.String()),
	)
	return rec, nil
}

// Delete removes a daily record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) result.Result[struct{}] {
	return result.From(ctx, s.log, struct{}{}, s.delete(ctx, id))
}

func (s *Service) delete(ctx context.Context, id uuid.UUID) error {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.records.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "daily record deleted",
		slog.String("tenant_id", tenantID.String()),
		slog.String("record_id", id.String()),
	)
	return nil
}
