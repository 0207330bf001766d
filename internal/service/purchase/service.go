package purchase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

type purchaseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	List(ctx context.Context, filter domain.PurchaseFilter) ([]*domain.Purchase, error)
	SearchNames(ctx context.Context, q string, limit int) ([]string, error)
	Add(ctx context.Context, p *domain.Purchase) error
	Update(ctx context.Context, p *domain.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type coopRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coop, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides supply purchase operations.
type Service struct {
	purchases purchaseRepo
	coops     coopRepo
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Purchase service.
func NewService(
	log *slog.Logger,
	purchases purchaseRepo,
	coops coopRepo,
	tx txManager,
) *Service {
	return &Service{
		purchases: purchases,
		coops:     coops,
		tx:        tx,
		log:       log.With("service", "purchase"),
		now:       time.Now,
	}
}
