package coop

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

type coopRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coop, error)
	List(ctx context.Context, filter domain.CoopFilter) ([]*domain.Coop, error)
	HasFlocks(ctx context.Context, id uuid.UUID) (bool, error)
	SearchNames(ctx context.Context, q string, limit int) ([]string, error)
	Add(ctx context.Context, c *domain.Coop) error
	Update(ctx context.Context, c *domain.Coop) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides coop management operations.
type Service struct {
	coops coopRepo
	tx    txManager
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Coop service.
func NewService(
	log *slog.Logger,
	coops coopRepo,
	tx txManager,
) *Service {
	return &Service{
		coops: coops,
		tx:    tx,
		log:   log.With("service", "coop"),
		now:   time.Now,
	}
}
