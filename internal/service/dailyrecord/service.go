package dailyrecord

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

type recordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyRecord, error)
	List(ctx context.Context, filter domain.DailyRecordFilter) ([]*domain.DailyRecord, error)
	Add(ctx context.Context, rec *domain.DailyRecord) error
	Update(ctx context.Context, rec *domain.DailyRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type flockRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flock, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides daily egg record operations.
type Service struct {
	records recordRepo
	flocks  flockRepo
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new DailyRecord service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	flocks flockRepo,
	tx txManager,
) *Service {
	return &Service{
		records: records,
		flocks:  flocks,
		tx:      tx,
		log:     log.With("service", "daily_record"),
		now:     time.Now,
	}
}
