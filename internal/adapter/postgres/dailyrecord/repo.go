// Package dailyrecord implements the DailyRecord repository using PostgreSQL.
package dailyrecord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

// Repo provides daily record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "tenant_id", "flock_id", "record_date", "egg_count", "notes", "created_at", "updated_at"}

const insertSQL = `
INSERT INTO daily_records (id, tenant_id, flock_id, record_date, egg_count, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const updateSQL = `
UPDATE daily_records
SET egg_count = $3, notes = $4, updated_at = $5
WHERE id = $1 AND tenant_id = $2`

const deleteSQL = `DELETE FROM daily_records WHERE id = $1 AND tenant_id = $2`

type row struct {
	ID         uuid.UUID `db:"id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	FlockID    uuid.UUID `db:"flock_id"`
	RecordDate time.Time `db:"record_date"`
	EggCount   int       `db:"egg_count"`
	Notes      *string   `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.DailyRecord {
	return &domain.DailyRecord{
		ID:         r.ID,
		TenantID:   r.TenantID,
		FlockID:    r.FlockID,
		RecordDate: domain.NormalizeDate(r.RecordDate),
		EggCount:   r.EggCount,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.UTC(),
		UpdatedAt:  r.UpdatedAt.UTC(),
	}
}

// GetByID returns a daily record of the current tenant.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyRecord, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("daily_records").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get daily record query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeDailyRecord, id)
	}
	return out.toDomain(), nil
}

// List returns the current tenant's daily records, newest day first.
func (r *Repo) List(ctx context.Context, filter domain.DailyRecordFilter) ([]*domain.DailyRecord, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder.
		Select(columns...).
		From("daily_records").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("record_date DESC", "flock_id")
	if filter.FlockID != nil {
		b = b.Where(squirrel.Eq{"flock_id": *filter.FlockID})
	}
	if filter.From != nil {
		b = b.Where(squirrel.GtOrEq{"record_date": domain.NormalizeDate(*filter.From)})
	}
	if filter.To != nil {
		b = b.Where(squirrel.LtOrEq{"record_date": domain.NormalizeDate(*filter.To)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list daily records query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}

	records := make([]*domain.DailyRecord, len(rows))
	for i, rw := range rows {
		records[i] = rw.toDomain()
	}
	return records, nil
}

// Add inserts a new daily record. A second record for the same flock and
// day is reported as a validation error on record_date.
func (r *Repo) Add(ctx context.Context, rec *domain.DailyRecord) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}
	if rec.TenantID != tenantID {
		return domain.NewNotFoundError(domain.EntityTypeDailyRecord, rec.ID)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		rec.ID, rec.TenantID, rec.FlockID, rec.RecordDate, rec.EggCount, rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		err = postgres.MapError(err, domain.EntityTypeDailyRecord, rec.ID)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.NewValidationError("record_date", "a record already exists for this flock and day")
		}
		return err
	}
	return nil
}

// Update persists the egg count and notes of rec.
func (r *Repo) Update(ctx context.Context, rec *domain.DailyRecord) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		rec.ID, tenantID, rec.EggCount, rec.Notes, rec.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeDailyRecord, rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeDailyRecord, rec.ID)
	}
	return nil
}

// Delete removes a daily record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, tenantID)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeDailyRecord, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeDailyRecord, id)
	}
	return nil
}
