package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	maxExternalIDLength = 255
	maxEmailLength      = 320
)

// Tenant is the root of data isolation. Every other entity carries the ID
// of the tenant that owns it.
type Tenant struct {
	ID         uuid.UUID
	ExternalID string // subject issued by the identity provider
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTenant creates a tenant for an identity-provider subject.
func NewTenant(externalID, email string, now time.Time) (*Tenant, error) {
	externalID, err := requireText("external_id", externalID, maxExternalIDLength)
	if err != nil {
		return nil, err
	}
	email, err = requireText("email", email, maxEmailLength)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Tenant{
		ID:         uuid.New(),
		ExternalID: externalID,
		Email:      email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
