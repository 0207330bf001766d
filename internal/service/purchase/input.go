package purchase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

// Input holds the caller-supplied fields of a purchase, used for both
// create and update.
type Input struct {
	CoopID       *uuid.UUID
	Name         string
	Type         domain.PurchaseType
	Amount       decimal.Decimal
	Quantity     decimal.Decimal
	Unit         domain.QuantityUnit
	PurchaseDate time.Time
	ConsumedDate *time.Time
	Notes        *string
}

func (i Input) params(tenantID uuid.UUID) domain.PurchaseParams {
	return domain.PurchaseParams{
		TenantID:     tenantID,
		CoopID:       i.CoopID,
		Name:         i.Name,
		Type:         i.Type,
		Amount:       i.Amount,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		PurchaseDate: i.PurchaseDate,
		ConsumedDate: i.ConsumedDate,
		Notes:        i.Notes,
	}
}

// ListInput holds the parameters for listing purchases. From and To bound
// the purchase date and are inclusive.
type ListInput struct {
	Type   *domain.PurchaseType
	CoopID *uuid.UUID
	From   *time.Time
	To     *time.Time
}
