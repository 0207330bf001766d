package coop

import "github.com/google/uuid"

// CreateInput holds the parameters for creating a coop.
type CreateInput struct {
	Name     string
	Location *string
}

// UpdateInput holds the parameters for updating a coop. Both fields are
// replaced; a nil Location clears it.
type UpdateInput struct {
	ID       uuid.UUID
	Name     string
	Location *string
}

// ListInput holds the parameters for listing coops.
type ListInput struct {
	IncludeInactive bool
}
