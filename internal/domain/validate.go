package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field length limits. All limits are inclusive and counted in characters.
const (
	MaxCoopNameLength        = 100
	MaxCoopLocationLength    = 200
	MaxFlockIdentifierLength = 50
	MaxHistoryReasonLength   = 50
	MaxNotesLength           = 500
	MaxPurchaseNameLength    = 100
)

// The helpers below each check one rule and return a single-field
// ValidationError. Factories call them in a fixed order and stop at the
// first failure, so the reported field is deterministic.

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return NewValidationError(field, "required")
	}
	return nil
}

// requireText trims v, rejects blank values and values longer than max.
func requireText(field, v string, max int) (string, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "", NewValidationError(field, "required")
	}
	if utf8.RuneCountInString(trimmed) > max {
		return "", NewValidationError(field, fmt.Sprintf("max %d characters", max))
	}
	return trimmed, nil
}

// optionalText trims v (blank becomes nil) and rejects values longer than max.
func optionalText(field string, v *string, max int) (*string, error) {
	n := NormalizeOptional(v)
	if n != nil && utf8.RuneCountInString(*n) > max {
		return nil, NewValidationError(field, fmt.Sprintf("max %d characters", max))
	}
	return n, nil
}

// MaxCount is the largest value a stored count column holds.
const MaxCount = math.MaxInt32

// count rejects negative values and values above MaxCount.
func count(field string, n int) error {
	if n < 0 {
		return NewValidationError(field, "must not be negative")
	}
	if n > MaxCount {
		return NewValidationError(field, fmt.Sprintf("must not exceed %d", MaxCount))
	}
	return nil
}

// fixedPoint rejects d unless it fits a NUMERIC(precision, scale) column
// without rounding.
func fixedPoint(field string, d decimal.Decimal, precision, scale int32) error {
	if !d.Equal(d.Truncate(scale)) {
		return NewValidationError(field, fmt.Sprintf("at most %d decimal places", scale))
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, precision-scale)) {
		return NewValidationError(field, fmt.Sprintf("at most %d digits before the decimal point", precision-scale))
	}
	return nil
}

// notInFuture rejects instants strictly after now.
func notInFuture(field string, t, now time.Time) error {
	if t.After(now) {
		return NewValidationError(field, "must not be in the future")
	}
	return nil
}

// dayNotInFuture normalizes t to a UTC calendar day and rejects days after
// the current UTC day.
func dayNotInFuture(field string, t, now time.Time) (time.Time, error) {
	day := NormalizeDate(t)
	if day.After(NormalizeDate(now)) {
		return time.Time{}, NewValidationError(field, "must not be in the future")
	}
	return day, nil
}
