package dailyrecord

import (
	"time"

	"github.com/google/uuid"
)

// CreateInput holds the parameters for recording a day's eggs.
type CreateInput struct {
	FlockID    uuid.UUID
	RecordDate time.Time
	EggCount   int
	Notes      *string
}

// UpdateInput holds the parameters for correcting a daily record.
type UpdateInput struct {
	ID       uuid.UUID
	EggCount int
	Notes    *string
}

// ListInput holds the parameters for listing daily records. From and To are
// inclusive calendar days.
type ListInput struct {
	FlockID *uuid.UUID
	From    *time.Time
	To      *time.Time
}
