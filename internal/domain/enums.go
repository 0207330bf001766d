package domain

// PurchaseType classifies a supply purchase.
type PurchaseType string

const (
	PurchaseTypeFeed       PurchaseType = "FEED"
	PurchaseTypeVitamins   PurchaseType = "VITAMINS"
	PurchaseTypeBedding    PurchaseType = "BEDDING"
	PurchaseTypeToys       PurchaseType = "TOYS"
	PurchaseTypeVeterinary PurchaseType = "VETERINARY"
	PurchaseTypeOther      PurchaseType = "OTHER"
)

func (p PurchaseType) String() string { return string(p) }

func (p PurchaseType) IsValid() bool {
	switch p {
	case PurchaseTypeFeed, PurchaseTypeVitamins, PurchaseTypeBedding,
		PurchaseTypeToys, PurchaseTypeVeterinary, PurchaseTypeOther:
		return true
	}
	return false
}

// QuantityUnit is the unit a purchase quantity is measured in.
type QuantityUnit string

const (
	QuantityUnitKilograms QuantityUnit = "KILOGRAMS"
	QuantityUnitGrams     QuantityUnit = "GRAMS"
	QuantityUnitLiters    QuantityUnit = "LITERS"
	QuantityUnitPieces    QuantityUnit = "PIECES"
	QuantityUnitPackages  QuantityUnit = "PACKAGES"
	QuantityUnitOther     QuantityUnit = "OTHER"
)

func (u QuantityUnit) String() string { return string(u) }

func (u QuantityUnit) IsValid() bool {
	switch u {
	case QuantityUnitKilograms, QuantityUnitGrams, QuantityUnitLiters,
		QuantityUnitPieces, QuantityUnitPackages, QuantityUnitOther:
		return true
	}
	return false
}

// Well-known composition change reasons. Reasons are free text; these are
// the values the application itself writes or suggests.
const (
	ReasonInitial    = "Initial"
	ReasonPurchase   = "Purchase"
	ReasonDeath      = "Death"
	ReasonSale       = "Sale"
	ReasonMaturation = "Maturation"
)

// EntityType identifies the kind of domain entity (used in error codes and logs).
type EntityType string

const (
	EntityTypeTenant       EntityType = "TENANT"
	EntityTypeCoop         EntityType = "COOP"
	EntityTypeFlock        EntityType = "FLOCK"
	EntityTypeFlockHistory EntityType = "FLOCK_HISTORY"
	EntityTypeDailyRecord  EntityType = "DAILY_RECORD"
	EntityTypePurchase     EntityType = "PURCHASE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTenant, EntityTypeCoop, EntityTypeFlock, EntityTypeFlockHistory,
		EntityTypeDailyRecord, EntityTypePurchase:
		return true
	}
	return false
}
