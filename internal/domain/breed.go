package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breed represents a dog breed with its grooming price profile
type Breed struct {
	ID        int64
	Name      string
	BasePrice *decimal.Decimal

	// Weight-based surcharge parameters. Either all three are set and
	// positive, or none of them are (see HasWeightPricing).
	StartWeight     *decimal.Decimal
	WeightIncrement *decimal.Decimal
	IncrementPrice  *decimal.Decimal

	TypicalWeightMin *decimal.Decimal
	TypicalWeightMax *decimal.Decimal

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWeightPricing returns true if the breed carries a complete
// weight-surcharge configuration
func (b *Breed) HasWeightPricing() bool {
	return b.StartWeight != nil && b.StartWeight.IsPositive() &&
		b.WeightIncrement != nil && b.WeightIncrement.IsPositive() &&
		b.IncrementPrice != nil && b.IncrementPrice.IsPositive()
}

// HasPartialWeightPricing returns true if some but not all surcharge
// parameters are set. Such a breed is rejected on catalog writes.
func (b *Breed) HasPartialWeightPricing() bool {
	set := 0
	for _, v := range []*decimal.Decimal{b.StartWeight, b.WeightIncrement, b.IncrementPrice} {
		if v != nil && !v.IsZero() {
			set++
		}
	}
	return set > 0 && set < 3
}
