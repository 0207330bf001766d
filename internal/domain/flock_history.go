package domain

import (
	"time"

	"github.com/google/uuid"
)

// Composition is the (hens, roosters, chicks) triple of a flock.
type Composition struct {
	Hens     int
	Roosters int
	Chicks   int
}

// Total returns the number of animals.
func (c Composition) Total() int {
	return c.Hens + c.Roosters + c.Chicks
}

// validate checks that every count is within range and that at least one is
// positive. The "at least one" failure is reported on the hens field.
func (c Composition) validate() error {
	if err := count("hens", c.Hens); err != nil {
		return err
	}
	if err := count("roosters", c.Roosters); err != nil {
		return err
	}
	if err := count("chicks", c.Chicks); err != nil {
		return err
	}
	if c.Hens == 0 && c.Roosters == 0 && c.Chicks == 0 {
		return NewValidationError("hens", "at least one of hens, roosters or chicks must be greater than zero")
	}
	return nil
}

// FlockHistory is one immutable snapshot in a flock's composition ledger.
//
// Fields are unexported: the only way to change an entry after creation is
// UpdateNotes, which returns a modified copy.
type FlockHistory struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	flockID     uuid.UUID
	changeDate  time.Time
	composition Composition
	reason      string
	notes       *string
	createdAt   time.Time
	updatedAt   time.Time
}

// newFlockHistory validates reason and notes and builds an entry dated now.
// The composition must already be validated by the caller.
func newFlockHistory(tenantID, flockID uuid.UUID, c Composition, reason string, notes *string, now time.Time) (FlockHistory, error) {
	reason, err := requireText("reason", reason, MaxHistoryReasonLength)
	if err != nil {
		return FlockHistory{}, err
	}
	n, err := optionalText("notes", notes, MaxNotesLength)
	if err != nil {
		return FlockHistory{}, err
	}

	now = now.UTC()
	return FlockHistory{
		id:          uuid.New(),
		tenantID:    tenantID,
		flockID:     flockID,
		changeDate:  now,
		composition: c,
		reason:      reason,
		notes:       n,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (h FlockHistory) ID() uuid.UUID { return h.id }
func (h FlockHistory) TenantID() uuid.UUID { return h.tenantID }
func (h FlockHistory) FlockID() uuid.UUID { return h.flockID }
func (h FlockHistory) ChangeDate() time.Time { return h.changeDate }
func (h FlockHistory) Composition() Composition { return h.composition }
func (h FlockHistory) Hens() int { return h.composition.Hens }
func (h FlockHistory) Roosters() int { return h.composition.Roosters }
func (h FlockHistory) Chicks() int { return h.composition.Chicks }
func (h FlockHistory) Reason() string { return h.reason }
func (h FlockHistory) CreatedAt() time.Time { return h.createdAt }
func (h FlockHistory) UpdatedAt() time.Time { return h.updatedAt }

// Notes returns a copy of the notes, or nil.
func (h FlockHistory) Notes() *string {
	if h.notes == nil {
		return nil
	}
	n := *h.notes
	return &n
}

// UpdateNotes returns a copy of the entry with new notes and a refreshed
// UpdatedAt. No other field changes.
func (h FlockHistory) UpdateNotes(notes *string, now time.Time) (FlockHistory, error) {
	n, err := optionalText("notes", notes, MaxNotesLength)
	if err != nil {
		return FlockHistory{}, err
	}
	h.notes = n
	h.updatedAt = now.UTC()
	return h, nil
}

// FlockHistoryRecord is the persisted form of a FlockHistory.
type FlockHistoryRecord struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	FlockID    uuid.UUID
	ChangeDate time.Time
	Hens       int
	Roosters   int
	Chicks     int
	Reason     string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Record exports the entry for persistence.
func (h FlockHistory) Record() FlockHistoryRecord {
	return FlockHistoryRecord{
		ID:         h.id,
		TenantID:   h.tenantID,
		FlockID:    h.flockID,
		ChangeDate: h.changeDate,
		Hens:       h.composition.Hens,
		Roosters:   h.composition.Roosters,
		Chicks:     h.composition.Chicks,
		Reason:     h.reason,
		Notes:      h.Notes(),
		CreatedAt:  h.createdAt,
		UpdatedAt:  h.updatedAt,
	}
}

// RestoreFlockHistory rebuilds an entry loaded from storage. It performs no
// validation; stored rows were validated when written.
func RestoreFlockHistory(r FlockHistoryRecord) FlockHistory {
	h := FlockHistory{
		id:         r.ID,
		tenantID:   r.TenantID,
		flockID:    r.FlockID,
		changeDate: r.ChangeDate.UTC(),
		composition: Composition{
			Hens:     r.Hens,
			Roosters: r.Roosters,
			Chicks:   r.Chicks,
		},
		reason:    r.Reason,
		createdAt: r.CreatedAt.UTC(),
		updatedAt: r.UpdatedAt.UTC(),
	}
	if r.Notes != nil {
		n := *r.Notes
		h.notes = &n
	}
	return h
}
