package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingMode determines how a service price combines with breed pricing
type PricingMode string

const (
	// PricingBaseRequired services are add-ons to a full groom: the final
	// price includes the breed base price.
	PricingBaseRequired PricingMode = "base_required"

	// PricingStandalone services are booked on their own: the breed base
	// price is not included, but a per-breed override may replace the
	// service price.
	PricingStandalone PricingMode = "standalone"
)

// Service represents a grooming service offered by the salon
type Service struct {
	ID                  int64
	Name                string
	Description         string
	Price               decimal.Decimal
	PricingMode         PricingMode
	ExemptFromSurcharge bool
	DurationMinutes     int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// BreedServiceOverride replaces a standalone service price for a specific
// breed, or marks the combination as unavailable
type BreedServiceOverride struct {
	ID          int64
	BreedID     int64
	ServiceID   int64
	Price       decimal.Decimal
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
