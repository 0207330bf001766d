// Package flock implements the Flock repository and the append-only
// composition history ledger using PostgreSQL.
//
// History rows are only ever inserted or have their notes updated; there is
// no delete path. Ledger order is the identity seq column. Its value is drawn
// at INSERT, not at commit, so two concurrent composition changes each get
// their own row and are ordered by insertion, which may differ from the order
// their transactions commit.
package flock

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

// Repo provides flock and flock history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flock repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var flockColumns = []string{
	"id", "tenant_id", "coop_id", "identifier", "hatch_date",
	"hens", "roosters", "chicks", "is_active", "created_at", "updated_at",
}

const historyColumns = `id, tenant_id, flock_id, change_date, hens, roosters, chicks, reason, notes, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const insertFlockSQL = `
INSERT INTO flocks (id, tenant_id, coop_id, identifier, hatch_date, hens, roosters, chicks, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const updateFlockSQL = `
UPDATE flocks
SET identifier = $3, hatch_date = $4, hens = $5, roosters = $6, chicks = $7, is_active = $8, updated_at = $9
WHERE id = $1 AND tenant_id = $2`

const insertHistorySQL = `
INSERT INTO flock_history (` + historyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const updateHistoryNotesSQL = `
UPDATE flock_history
SET notes = $3, updated_at = $4
WHERE id = $1 AND tenant_id = $2`

const getHistoryByIDSQL = `
SELECT ` + historyColumns + `
FROM flock_history
WHERE id = $1 AND tenant_id = $2`

const listHistorySQL = `
SELECT ` + historyColumns + `
FROM flock_history
WHERE flock_id = $1 AND tenant_id = $2
ORDER BY seq`

const listHistoryBatchSQL = `
SELECT ` + historyColumns + `
FROM flock_history
WHERE flock_id = ANY($1::uuid[]) AND tenant_id = $2
ORDER BY flock_id, seq`

type flockRow struct {
	ID         uuid.UUID `db:"id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	CoopID     uuid.UUID `db:"coop_id"`
	Identifier string    `db:"identifier"`
	HatchDate  time.Time `db:"hatch_date"`
	Hens       int       `db:"hens"`
	Roosters   int       `db:"roosters"`
	Chicks     int       `db:"chicks"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r flockRow) record() domain.FlockRecord {
	return domain.FlockRecord{
		ID:         r.ID,
		TenantID:   r.TenantID,
		CoopID:     r.CoopID,
		Identifier: r.Identifier,
		HatchDate:  r.HatchDate,
		Hens:       r.Hens,
		Roosters:   r.Roosters,
		Chicks:     r.Chicks,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type historyRow struct {
	ID         uuid.UUID `db:"id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	FlockID    uuid.UUID `db:"flock_id"`
	ChangeDate time.Time `db:"change_date"`
	Hens       int       `db:"hens"`
	Roosters   int       `db:"roosters"`
	Chicks     int       `db:"chicks"`
	Reason     string    `db:"reason"`
	Notes      *string   `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r historyRow) toDomain() domain.FlockHistory {
	return domain.RestoreFlockHistory(domain.FlockHistoryRecord{
		ID:         r.ID,
		TenantID:   r.TenantID,
		FlockID:    r.FlockID,
		ChangeDate: r.ChangeDate,
		Hens:       r.Hens,
		Roosters:   r.Roosters,
		Chicks:     r.Chicks,
		Reason:     r.Reason,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	})
}

// ---------------------------------------------------------------------------
// Flock read operations
// ---------------------------------------------------------------------------

// GetByID returns a flock of the current tenant together with its full
// ledger. A flock owned by another tenant is reported as not found.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flock, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Select(flockColumns...).
		From("flocks").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flock query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var fr flockRow
	if err := pgxscan.Get(ctx, q, &fr, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeFlock, id)
	}

	history, err := r.listHistory(ctx, q, id, tenantID)
	if err != nil {
		return nil, err
	}

	return domain.RestoreFlock(fr.record(), history), nil
}

// List returns the current tenant's flocks ordered by identifier, each with
// its ledger. Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context, filter domain.FlockFilter) ([]*domain.Flock, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder.
		Select(flockColumns...).
		From("flocks").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("lower(identifier)", "id")
	if filter.CoopID != nil {
		b = b.Where(squirrel.Eq{"coop_id": *filter.CoopID})
	}
	if !filter.IncludeInactive {
		b = b.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flocks query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []flockRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list flocks: %w", err)
	}
	if len(rows) == 0 {
		return []*domain.Flock{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, fr := range rows {
		ids[i] = fr.ID
	}

	var hrows []historyRow
	if err := pgxscan.Select(ctx, q, &hrows, listHistoryBatchSQL, ids, tenantID); err != nil {
		return nil, fmt.Errorf("list flock history batch: %w", err)
	}

	byFlock := make(map[uuid.UUID][]domain.FlockHistory, len(rows))
	for _, hr := range hrows {
		byFlock[hr.FlockID] = append(byFlock[hr.FlockID], hr.toDomain())
	}

	flocks := make([]*domain.Flock, len(rows))
	for i, fr := range rows {
		flocks[i] = domain.RestoreFlock(fr.record(), byFlock[fr.ID])
	}
	return flocks, nil
}

// SearchNames returns up to limit flock identifiers containing q,
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
		Select("identifier").
		Distinct().
		From("flocks").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.ILike{"identifier": postgres.ContainsPattern(q)}).
		OrderBy("identifier").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search flocks query: %w", err)
	}

	names := []string{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names, query, args...); err != nil {
		return nil, fmt.Errorf("search flock identifiers: %w", err)
	}
	return names, nil
}

// ---------------------------------------------------------------------------
// Flock write operations
// ---------------------------------------------------------------------------

// Add inserts a new flock and every ledger entry it carries (normally the
// single "Initial" entry) in one batch.
func (r *Repo) Add(ctx context.Context, f *domain.Flock) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}
	if f.TenantID() != tenantID {
		return domain.NewNotFoundError(domain.EntityTypeFlock, f.ID())
	}

	rec := f.Record()
	batch := &pgx.Batch{}
	batch.Queue(insertFlockSQL,
		rec.ID, rec.TenantID, rec.CoopID, rec.Identifier, rec.HatchDate,
		rec.Hens, rec.Roosters, rec.Chicks, rec.IsActive, rec.CreatedAt, rec.UpdatedAt,
	)
	for _, h := range f.History() {
		queueHistory(batch, h.Record())
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, domain.EntityTypeFlock, rec.ID)
		}
	}
	return nil
}

// Update persists the flock row: metadata, current counts and active flag.
// New ledger entries are written separately with AppendHistory.
func (r *Repo) Update(ctx context.Context, f *domain.Flock) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	rec := f.Record()
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateFlockSQL,
		rec.ID, tenantID, rec.Identifier, rec.HatchDate,
		rec.Hens, rec.Roosters, rec.Chicks, rec.IsActive, rec.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeFlock, rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeFlock, rec.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// History ledger
// ---------------------------------------------------------------------------

// AppendHistory inserts one new ledger entry.
func (r *Repo) AppendHistory(ctx context.Context, h domain.FlockHistory) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}
	if h.TenantID() != tenantID {
		return domain.NewNotFoundError(domain.EntityTypeFlock, h.FlockID())
	}

	rec := h.Record()
	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertHistorySQL, historyArgs(rec)...)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeFlockHistory, rec.ID)
	}
	return nil
}

// GetHistoryByID returns a single ledger entry of the current tenant.
func (r *Repo) GetHistoryByID(ctx context.Context, id uuid.UUID) (domain.FlockHistory, error) {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return domain.FlockHistory{}, err
	}

	var hr historyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &hr, getHistoryByIDSQL, id, tenantID); err != nil {
		return domain.FlockHistory{}, postgres.MapError(err, domain.EntityTypeFlockHistory, id)
	}
	return hr.toDomain(), nil
}

// UpdateHistoryNotes writes the notes and updated_at of h. No other column
// of a ledger entry is ever updated.
func (r *Repo) UpdateHistoryNotes(ctx context.Context, h domain.FlockHistory) error {
	tenantID, err := postgres.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateHistoryNotesSQL,
		h.ID(), tenantID, h.Notes(), h.UpdatedAt(),
	)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeFlockHistory, h.ID())
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeFlockHistory, h.ID())
	}
	return nil
}

func (r *Repo) listHistory(ctx context.Context, q postgres.Querier, flockID, tenantID uuid.UUID) ([]domain.FlockHistory, error) {
	var rows []historyRow
	if err := pgxscan.Select(ctx, q, &rows, listHistorySQL, flockID, tenantID); err != nil {
		return nil, fmt.Errorf("list flock history: %w", err)
	}

	history := make([]domain.FlockHistory, len(rows))
	for i, hr := range rows {
		history[i] = hr.toDomain()
	}
	return history, nil
}

func queueHistory(b *pgx.Batch, rec domain.FlockHistoryRecord) {
	b.Queue(insertHistorySQL, historyArgs(rec)...)
}

func historyArgs(rec domain.FlockHistoryRecord) []any {
	return []any{
		rec.ID, rec.TenantID, rec.FlockID, rec.ChangeDate,
		rec.Hens, rec.Roosters, rec.Chicks, rec.Reason, rec.Notes,
		rec.CreatedAt, rec.UpdatedAt,
	}
}
