package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coop is a housing unit that flocks live in.
type Coop struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Location  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCoop validates the input and returns a new active coop.
//
// Validation order: tenant_id, name, location.
func NewCoop(tenantID uuid.UUID, name string, location *string, now time.Time) (*Coop, error) {
	if err := requireID("tenant_id", tenantID); err != nil {
		return nil, err
	}
	name, loc, err := validateCoopFields(name, location)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Coop{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Location:  loc,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces name and location. On error the coop is left unchanged.
func (c *Coop) Update(name string, location *string, now time.Time) error {
	name, loc, err := validateCoopFields(name, location)
	if err != nil {
		return err
	}

	c.Name = name
	c.Location = loc
	c.UpdatedAt = now.UTC()
	return nil
}

// Deactivate marks the coop inactive. Deactivating twice is a no-op apart
// from the timestamp.
func (c *Coop) Deactivate(now time.Time) {
	c.IsActive = false
	c.UpdatedAt = now.UTC()
}

// Reactivate marks the coop active again.
func (c *Coop) Reactivate(now time.Time) {
	c.IsActive = true
	c.UpdatedAt = now.UTC()
}

func validateCoopFields(name string, location *string) (string, *string, error) {
	name, err := requireText("name", name, MaxCoopNameLength)
	if err != nil {
		return "", nil, err
	}
	loc, err := optionalText("location", location, MaxCoopLocationLength)
	if err != nil {
		return "", nil, err
	}
	return name, loc, nil
}
