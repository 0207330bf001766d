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

// UpdateComposition sets new counts on a flock and records the change in its
// ledger. Flock row and ledger entry are written in the same transaction.
func (s *Service) UpdateComposition(ctx context.Context, input UpdateCompositionInput) result.Result[*domain.Flock] {
	f, err := s.updateComposition(ctx, input)
	return result.From(ctx, s.log, f, err)
}

func (s *Service) updateComposition(ctx context.Context, input UpdateCompositionInput) (*domain.Flock, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		f     *domain.Flock
		entry domain.FlockHistory
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		f, err = s.flocks.GetByID(txCtx, input.ID)
		if err != nil {
			return err
		}

		entry, err = f.UpdateComposition(input.Hens, input.Roosters, input.Chicks, input.Reason, input.Notes, s.now())
		if err != nil {
			return err
		}

		if err := s.flocks.Update(txCtx, f); err != nil {
			return fmt.Errorf("update flock: %w", err)
		}
		if err := s.flocks.AppendHistory(txCtx, entry); err != nil {
			return fmt.Errorf("append flock history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flock composition changed",
		slog.String("tenant_id", tenantID.String()),
		slog.String("flock_id", input.ID.String()),
		slog.String("history_id", entry.ID().String()),
		slog.String("reason", entry.Reason()),
	)
	return f, nil
}

// History returns a flock's ledger, oldest first.
func (s *Service) History(ctx context.Context, flockID uuid.UUID) result.Result[[]domain.FlockHistory] {
	h, err := s.history(ctx, flockID)
	return result.From(ctx, s.log, h, err)
}

func (s *Service) history(ctx context.Context, flockID uuid.UUID) ([]domain.FlockHistory, error) {
	if !ctxutil.IsAuthenticated(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var history []domain.FlockHistory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// An unknown flock must read as not found, not as an empty ledger.
		f, err := s.flocks.GetByID(txCtx, flockID)
		if err != nil {
			return err
		}
		history = f.History()
		return nil
	})
	return history, err
}

// UpdateHistoryNotes replaces the notes of one ledger entry. Counts, reason
// and change date never change.
func (s *Service) UpdateHistoryNotes(ctx context.Context, input UpdateHistoryNotesInput) result.Result[domain.FlockHistory] {
	h, err := s.updateHistoryNotes(ctx, input)
	return result.From(ctx, s.log, h, err)
}

func (s *Service) updateHistoryNotes(ctx context.Context, input UpdateHistoryNotesInput) (domain.FlockHistory, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return domain.FlockHistory{}, domain.ErrUnauthorized
	}

	var updated domain.FlockHistory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.flocks.GetHistoryByID(txCtx, input.HistoryID)
		if err != nil {
			return err
		}
		updated, err = h.UpdateNotes(input.Notes, s.now())
		if err != nil {
			return err
		}
		if err := s.flocks.UpdateHistoryNotes(txCtx, updated); err != nil {
			return fmt.Errorf("update history notes: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.FlockHistory{}, err
	}

	s.log.InfoContext(ctx, "flock history notes updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("history_id", input.HistoryID.String()),
	)
	return updated, nil
}
