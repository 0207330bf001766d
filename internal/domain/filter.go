package domain

import (
	"time"

	"github.com/google/uuid"
)

// CoopFilter narrows a coop listing.
type CoopFilter struct {
	IncludeInactive bool
}

// FlockFilter narrows a flock listing.
type FlockFilter struct {
	CoopID          *uuid.UUID
	IncludeInactive bool
}

// DailyRecordFilter narrows a daily record listing. From and To are
// inclusive calendar days.
type DailyRecordFilter struct {
	FlockID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

// PurchaseFilter narrows a purchase listing. From and To are inclusive
// calendar days matched against the purchase date.
type PurchaseFilter struct {
	Type   *PurchaseType
	CoopID *uuid.UUID
	From   *time.Time
	To     *time.Time
}
