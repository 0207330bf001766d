package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyRecord is the egg count of one flock for one calendar day.
type DailyRecord struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	FlockID    uuid.UUID
	RecordDate time.Time // UTC midnight
	EggCount   int
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewDailyRecord validates the input and returns a new record.
//
// Validation order: tenant_id, flock_id, notes, egg_count, record_date.
func NewDailyRecord(tenantID, flockID uuid.UUID, recordDate time.Time, eggCount int, notes *string, now time.Time) (*DailyRecord, error) {
	if err := requireID("tenant_id", tenantID); err != nil {
		return nil, err
	}
	if err := requireID("flock_id", flockID); err != nil {
		return nil, err
	}
	n, err := optionalText("notes", notes, MaxNotesLength)
	if err != nil {
		return nil, err
	}
	if err := count("egg_count", eggCount); err != nil {
		return nil, err
	}
	day, err := dayNotInFuture("record_date", recordDate, now)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &DailyRecord{
		ID:         uuid.New(),
		TenantID:   tenantID,
		FlockID:    flockID,
		RecordDate: day,
		EggCount:   eggCount,
		Notes:      n,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update replaces the egg count and notes. The flock and the record date
// are fixed once created.
func (r *DailyRecord) Update(eggCount int, notes *string, now time.Time) error {
	n, err := optionalText("notes", notes, MaxNotesLength)
	if err != nil {
		return err
	}
	if err := count("egg_count", eggCount); err != nil {
		return err
	}

	r.EggCount = eggCount
	r.Notes = n
	r.UpdatedAt = now.UTC()
	return nil
}
