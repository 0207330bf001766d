package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flock is a group of birds living in one coop, together with the ledger of
// every composition it has had.
//
// State is unexported so composition can only change through
// UpdateComposition, which always appends a history entry.
type Flock struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	coopID      uuid.UUID
	identifier  string
	hatchDate   time.Time
	composition Composition
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
	history     []FlockHistory
}

// FlockParams holds the input for NewFlock.
type FlockParams struct {
	TenantID   uuid.UUID
	CoopID     uuid.UUID
	Identifier string
	HatchDate  time.Time
	Hens       int
	Roosters   int
	Chicks     int
	Notes      *string // copied onto the initial history entry
}

// NewFlock validates p and returns an active flock whose ledger holds exactly
// one "Initial" entry mirroring the starting composition.
//
// Validation order: tenant_id, coop_id, identifier, notes, hens, roosters,
// chicks, hatch_date, then the at-least-one-animal rule (reported on hens).
func NewFlock(p FlockParams, now time.Time) (*Flock, error) {
	if err := requireID("tenant_id", p.TenantID); err != nil {
		return nil, err
	}
	if err := requireID("coop_id", p.CoopID); err != nil {
		return nil, err
	}
	identifier, err := requireText("identifier", p.Identifier, MaxFlockIdentifierLength)
	if err != nil {
		return nil, err
	}
	if _, err := optionalText("notes", p.Notes, MaxNotesLength); err != nil {
		return nil, err
	}

	c := Composition{Hens: p.Hens, Roosters: p.Roosters, Chicks: p.Chicks}
	if err := validateCounts(c); err != nil {
		return nil, err
	}
	if err := notInFuture("hatch_date", p.HatchDate, now); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	now = now.UTC()
	f := &Flock{
		id:          uuid.New(),
		tenantID:    p.TenantID,
		coopID:      p.CoopID,
		identifier:  identifier,
		hatchDate:   p.HatchDate.UTC(),
		composition: c,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}

	initial, err := newFlockHistory(f.tenantID, f.id, c, ReasonInitial, p.Notes, now)
	if err != nil {
		return nil, err
	}
	f.history = []FlockHistory{initial}

	return f, nil
}

// Update changes the flock's metadata. It never touches the composition or
// the ledger. On error the flock is left unchanged.
func (f *Flock) Update(identifier string, hatchDate time.Time, now time.Time) error {
	identifier, err := requireText("identifier", identifier, MaxFlockIdentifierLength)
	if err != nil {
		return err
	}
	if err := notInFuture("hatch_date", hatchDate, now); err != nil {
		return err
	}

	f.identifier = identifier
	f.hatchDate = hatchDate.UTC()
	f.updatedAt = now.UTC()
	return nil
}

// UpdateComposition sets new counts and appends exactly one history entry,
// dated now, holding the post-change counts. The new entry is returned so
// the caller can persist it in the same transaction as the flock.
//
// Validation order: reason, notes, hens, roosters, chicks, at-least-one.
// On error neither the counts nor the ledger change.
func (f *Flock) UpdateComposition(hens, roosters, chicks int, reason string, notes *string, now time.Time) (FlockHistory, error) {
	if _, err := requireText("reason", reason, MaxHistoryReasonLength); err != nil {
		return FlockHistory{}, err
	}
	if _, err := optionalText("notes", notes, MaxNotesLength); err != nil {
		return FlockHistory{}, err
	}
	c := Composition{Hens: hens, Roosters: roosters, Chicks: chicks}
	if err := c.validate(); err != nil {
		return FlockHistory{}, err
	}

	entry, err := newFlockHistory(f.tenantID, f.id, c, reason, notes, now)
	if err != nil {
		return FlockHistory{}, err
	}

	f.composition = c
	f.history = append(f.history, entry)
	f.updatedAt = now.UTC()
	return entry, nil
}

// Archive deactivates the flock. The ledger is kept.
func (f *Flock) Archive(now time.Time) {
	f.isActive = false
	f.updatedAt = now.UTC()
}

// Reactivate marks an archived flock active again.
func (f *Flock) Reactivate(now time.Time) {
	f.isActive = true
	f.updatedAt = now.UTC()
}

func (f *Flock) ID() uuid.UUID { return f.id }
func (f *Flock) TenantID() uuid.UUID { return f.tenantID }
func (f *Flock) CoopID() uuid.UUID { return f.coopID }
func (f *Flock) Identifier() string { return f.identifier }
func (f *Flock) HatchDate() time.Time { return f.hatchDate }
func (f *Flock) Composition() Composition { return f.composition }
func (f *Flock) CurrentHens() int { return f.composition.Hens }
func (f *Flock) CurrentRoosters() int { return f.composition.Roosters }
func (f *Flock) CurrentChicks() int { return f.composition.Chicks }
func (f *Flock) IsActive() bool { return f.isActive }
func (f *Flock) CreatedAt() time.Time { return f.createdAt }
func (f *Flock) UpdatedAt() time.Time { return f.updatedAt }

// History returns the ledger in insertion order, oldest first.
func (f *Flock) History() []FlockHistory {
	out := make([]FlockHistory, len(f.history))
	copy(out, f.history)
	return out
}

// LatestHistory returns the most recent ledger entry. Insertion order is
// chronological, so this is simply the last element.
func (f *Flock) LatestHistory() (FlockHistory, bool) {
	if len(f.history) == 0 {
		return FlockHistory{}, false
	}
	return f.history[len(f.history)-1], true
}

// FlockRecord is the persisted form of a Flock row (without its ledger).
type FlockRecord struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	CoopID     uuid.UUID
	Identifier string
	HatchDate  time.Time
	Hens       int
	Roosters   int
	Chicks     int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Record exports the flock row for persistence.
func (f *Flock) Record() FlockRecord {
	return FlockRecord{
		ID:         f.id,
		TenantID:   f.tenantID,
		CoopID:     f.coopID,
		Identifier: f.identifier,
		HatchDate:  f.hatchDate,
		Hens:       f.composition.Hens,
		Roosters:   f.composition.Roosters,
		Chicks:     f.composition.Chicks,
		IsActive:   f.isActive,
		CreatedAt:  f.createdAt,
		UpdatedAt:  f.updatedAt,
	}
}

// RestoreFlock rebuilds a flock loaded from storage. history must already
// be in ledger order. No validation is performed.
func RestoreFlock(r FlockRecord, history []FlockHistory) *Flock {
	h := make([]FlockHistory, len(history))
	copy(h, history)
	return &Flock{
		id:         r.ID,
		tenantID:   r.TenantID,
		coopID:     r.CoopID,
		identifier: r.Identifier,
		hatchDate:  r.HatchDate.UTC(),
		composition: Composition{
			Hens:     r.Hens,
			Roosters: r.Roosters,
			Chicks:   r.Chicks,
		},
		isActive:  r.IsActive,
		createdAt: r.CreatedAt.UTC(),
		updatedAt: r.UpdatedAt.UTC(),
		history:   h,
	}
}

func validateCounts(c Composition) error {
	if err := count("hens", c.Hens); err != nil {
		return err
	}
	if err := count("roosters", c.Roosters); err != nil {
		return err
	}
	return count("chicks", c.Chicks)
}
