// Package flock orchestrates flock use cases. Every composition change
// persists the updated flock and its new ledger entry in one transaction.
package flock

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

type flockRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flock, error)
	List(ctx context.Context, filter domain.FlockFilter) ([]*domain.Flock, error)
	SearchNames(ctx context.Context, q string, limit int) ([]string, error)
	Add(ctx context.Context, f *domain.Flock) error
	Update(ctx context.Context, f *domain.Flock) error

	// History ledger
	AppendHistory(ctx context.Context, h domain.FlockHistory) error
	GetHistoryByID(ctx context.Context, id uuid.UUID) (domain.FlockHistory, error)
	UpdateHistoryNotes(ctx context.Context, h domain.FlockHistory) error
}

type coopRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coop, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides flock and flock history operations.
type Service struct {
	flocks flockRepo
	coops  coopRepo
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new Flock service.
func NewService(
	log *slog.Logger,
	flocks flockRepo,
	coops coopRepo,
	tx txManager,
) *Service {
	return &Service{
		flocks: flocks,
		coops:  coops,
		tx:     tx,
		log:    log.With("service", "flock"),
		now:    time.Now,
	}
}
