// Package purchase implements the Purchase repository using PostgreSQL.
package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

// Repo provides purchase persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new purchase repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "tenant_id", "coop_id", "name", "type", "amount", "quantity", "unit",
	"purchase_date", "consumed_date", "notes", "created_at", "updated_at",
}

const insertSQL = `
INSERT INTO purchases (id, tenant_id, coop_id, name, type, amount, quantity, unit, purchase_date, consumed_date, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const updateSQL = `
UPDATE purchases
SET coop_id = $3, name = $4, type = $5, amount = $6, quantity = $7, unit = $8,
    purchase_date = $9, consumed_date = $10, notes = $11, updated_at = $12
WHERE id = $1 AND tenant_id = $2`

const deleteSQL = `DELETE FROM purchases WHERE id = $1 AND tenant_id = $2`

type row struct {
	ID           uuid.UUID       `db:"id"`
	TenantID     uuid.UUID       `db:"tenant_id"`
	CoopID       *uuid.UUID      `db:"coop_id"`
	Name         string          `db:"name"`
	Type         string          `db:"type"`
	Amount       decimal.Decimal `db:"amount"`
	Quantity     decimal.Decimal `db:"quantity"`
	Unit         string          `db:"unit"`
	PurchaseDate time.Time       `db:"purchase_date"`
	ConsumedDate *time.Time      `db:"consumed_date"`
	Notes        *string         `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r row) toDomain() *domain.Purchase {
	p := &domain.Purchase{
		ID:           r.ID,
		TenantID:     r.TenantID,
		CoopID:       r.CoopID,
		Name:         r.Name,
		Type:         domain.PurchaseType(r.Type),
		Amount:       r.Amount,
		Quantity:     r.Quantity,
		Unit:         domain.QuantityUnit(r.Unit),
		PurchaseDate: domain.NormalizeDate(r.PurchaseDate),
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
	if r.ConsumedDate != nil {
		d := domain.NormalizeDate(*r.ConsumedDate)
		p.ConsumedDate = &d
	}
	return p
}

// GetByID returns a purchase of the current tenant.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("purchases").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get purchase query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypePurchase, id)
	}
	return out.toDomain(), nil
}

// List returns the current tenant's purchases, newest purchase date first.
func (r *Repo) List(ctx context.Context, filter domain.PurchaseFilter) ([]*domain.Purchase, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder.
		Select(columns...).
		From("purchases").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("purchase_date DESC", "created_at DESC")
	if filter.Type != nil {
		b = b.Where(squirrel.Eq{"type": string(*filter.Type)})
	}
	if filter.CoopID != nil {
		b = b.Where(squirrel.Eq{"coop_id": *filter.CoopID})
	}
	if filter.From != nil {
		b = b.Where(squirrel.GtOrEq{"purchase_date": domain.NormalizeDate(*filter.From)})
	}
	if filter.To != nil {
		b = b.Where(squirrel.LtOrEq{"purchase_date": domain.NormalizeDate(*filter.To)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list purchases query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	purchases := make([]*domain.Purchase, len(rows))
	for i, rw := range rows {
		purchases[i] = rw.toDomain()
	}
	return purchases, nil
}

// SearchNames returns up to limit distinct purchase names containing q,
// case-insensitively. An empty query returns an empty slice.
func (r *Repo) SearchNames(ctx context.Context, q string, limit int) ([]string, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	q = domain.NormalizeSearchQuery(q)
	if q == "" || limit <= 0 {
		return []string{}, nil
	}

	query, args, err := postgres.Builder.
		Select("name").
		Distinct().
		From("purchases").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.ILike{"name": postgres.ContainsPattern(q)}).
		OrderBy("name").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search purchases query: %w", err)
	}

	names := []string{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names, query, args...); err != nil {
		return nil, fmt.Errorf("search purchase names: %w", err)
	}
	return names, nil
}

// Add inserts a new purchase.
func (r *Repo) Add(ctx context.Context, p *domain.Purchase) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}
	if p.TenantID != tenantID {
		return domain.NewNotFoundError(domain.EntityTypePurchase, p.ID)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		p.ID, p.TenantID, p.CoopID, p.Name, string(p.Type), p.Amount, p.Quantity, string(p.Unit),
		p.PurchaseDate, p.ConsumedDate, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypePurchase, p.ID)
	}
	return nil
}

// Update persists every mutable field of p.
func (r *Repo) Update(ctx context.Context, p *domain.Purchase) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		p.ID, tenantID, p.CoopID, p.Name, string(p.Type), p.Amount, p.Quantity, string(p.Unit),
		p.PurchaseDate, p.ConsumedDate, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypePurchase, p.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypePurchase, p.ID)
	}
	return nil
}

// Delete removes a purchase.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, tenantID)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypePurchase, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypePurchase, id)
	}
	return nil
}
