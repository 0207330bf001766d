package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Column shapes of purchases.amount and purchases.quantity.
const (
	amountPrecision   = 12
	amountScale       = 2
	quantityPrecision = 12
	quantityScale     = 3
)

// Purchase is a supply bought by a tenant, optionally assigned to a coop.
type Purchase struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	CoopID       *uuid.UUID
	Name         string
	Type         PurchaseType
	Amount       decimal.Decimal
	Quantity     decimal.Decimal
	Unit         QuantityUnit
	PurchaseDate time.Time  // UTC midnight
	ConsumedDate *time.Time // UTC midnight, on or after PurchaseDate
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseParams holds the caller-supplied fields of a purchase.
type PurchaseParams struct {
	TenantID     uuid.UUID
	CoopID       *uuid.UUID
	Name         string
	Type         PurchaseType
	Amount       decimal.Decimal
	Quantity     decimal.Decimal
	Unit         QuantityUnit
	PurchaseDate time.Time
	ConsumedDate *time.Time
	Notes        *string
}

// purchaseFields is the validated, normalized form of PurchaseParams.
type purchaseFields struct {
	coopID       *uuid.UUID
	name         string
	typ          PurchaseType
	amount       decimal.Decimal
	quantity     decimal.Decimal
	unit         QuantityUnit
	purchaseDate time.Time
	consumedDate *time.Time
	notes        *string
}

// NewPurchase validates p and returns a new purchase.
//
// Validation order: tenant_id, coop_id, name, notes, type, unit, amount,
// quantity, purchase_date, consumed_date.
func NewPurchase(p PurchaseParams, now time.Time) (*Purchase, error) {
	if err := requireID("tenant_id", p.TenantID); err != nil {
		return nil, err
	}
	f, err := validatePurchase(p, now)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	pu := &Purchase{
		ID:        uuid.New(),
		TenantID:  p.TenantID,
		CreatedAt: now,
	}
	pu.apply(f, now)
	return pu, nil
}

// Update replaces every mutable field with the values in p. p.TenantID is
// ignored. On error the purchase is left unchanged.
func (pu *Purchase) Update(p PurchaseParams, now time.Time) error {
	f, err := validatePurchase(p, now)
	if err != nil {
		return err
	}
	pu.apply(f, now)
	return nil
}

// MarkConsumed records the day the supply was used up.
func (pu *Purchase) MarkConsumed(date time.Time, now time.Time) error {
	day, err := consumedDay(date, pu.PurchaseDate, now)
	if err != nil {
		return err
	}
	pu.ConsumedDate = &day
	pu.UpdatedAt = now.UTC()
	return nil
}

func (pu *Purchase) apply(f purchaseFields, now time.Time) {
	pu.CoopID = f.coopID
	pu.Name = f.name
	pu.Type = f.typ
	pu.Amount = f.amount
	pu.Quantity = f.quantity
	pu.Unit = f.unit
	pu.PurchaseDate = f.purchaseDate
	pu.ConsumedDate = f.consumedDate
	pu.Notes = f.notes
	pu.UpdatedAt = now.UTC()
}

func validatePurchase(p PurchaseParams, now time.Time) (purchaseFields, error) {
	var f purchaseFields

	if p.CoopID != nil {
		if err := requireID("coop_id", *p.CoopID); err != nil {
			return f, err
		}
		id := *p.CoopID
		f.coopID = &id
	}

	name, err := requireText("name", p.Name, MaxPurchaseNameLength)
	if err != nil {
		return f, err
	}
	f.name = name

	if f.notes, err = optionalText("notes", p.Notes, MaxNotesLength); err != nil {
		return f, err
	}

	if !p.Type.IsValid() {
		return f, NewValidationError("type", "invalid purchase type")
	}
	f.typ = p.Type
	if !p.Unit.IsValid() {
		return f, NewValidationError("unit", "invalid quantity unit")
	}
	f.unit = p.Unit

	if p.Amount.IsNegative() {
		return f, NewValidationError("amount", "must not be negative")
	}
	if err := fixedPoint("amount", p.Amount, amountPrecision, amountScale); err != nil {
		return f, err
	}
	f.amount = p.Amount
	if !p.Quantity.IsPositive() {
		return f, NewValidationError("quantity", "must be greater than zero")
	}
	if err := fixedPoint("quantity", p.Quantity, quantityPrecision, quantityScale); err != nil {
		return f, err
	}
	f.quantity = p.Quantity

	if f.purchaseDate, err = dayNotInFuture("purchase_date", p.PurchaseDate, now); err != nil {
		return f, err
	}
	if p.ConsumedDate != nil {
		day, err := consumedDay(*p.ConsumedDate, f.purchaseDate, now)
		if err != nil {
			return f, err
		}
		f.consumedDate = &day
	}

	return f, nil
}

// consumedDay normalizes date and checks it against the purchase day and
// the current day.
func consumedDay(date, purchaseDate, now time.Time) (time.Time, error) {
	day, err := dayNotInFuture("consumed_date", date, now)
	if err != nil {
		return time.Time{}, err
	}
	if day.Before(purchaseDate) {
		return time.Time{}, NewValidationError("consumed_date", "must be on or after purchase_date")
	}
	return day, nil
}
