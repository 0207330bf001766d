package flock

import (
	"time"

	"github.com/google/uuid"
)

// CreateInput holds the parameters for creating a flock.
type CreateInput struct {
	CoopID     uuid.UUID
	Identifier string
	HatchDate  time.Time
	Hens       int
	Roosters   int
	Chicks     int
	Notes      *string // stored on the initial history entry
}

// ListInput holds the parameters for listing flocks.
type ListInput struct {
	CoopID          *uuid.UUID
	IncludeInactive bool
}

// UpdateInput holds the parameters for updating flock metadata.
type UpdateInput struct {
	ID         uuid.UUID
	Identifier string
	HatchDate  time.Time
}

// UpdateCompositionInput holds a new composition and the reason for it.
type UpdateCompositionInput struct {
	ID       uuid.UUID
	Hens     int
	Roosters int
	Chicks   int
	Reason   string
	Notes    *string
}

// UpdateHistoryNotesInput holds new notes for a ledger entry. Nil clears them.
type UpdateHistoryNotesInput struct {
	HistoryID uuid.UUID
	Notes     *string
}
