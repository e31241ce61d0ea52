package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

// Component is one line of a price breakdown shown to the customer.
type Component struct {
	Label  string
	Amount decimal.Decimal
}

// Surcharge computes the weight-based surcharge for a breed/service pair.
//
// The surcharge grows stepwise: one IncrementPrice for every full
// WeightIncrement the dog weighs above StartWeight. A dog at or below
// StartWeight, an unknown weight, an exempt service or a breed without
// weight pricing all yield zero. Partial increments never count
// (floor division).
func Surcharge(breed *domain.Breed, service *domain.Service, dogWeight *decimal.Decimal) decimal.Decimal {
	if service.ExemptFromSurcharge {
		return decimal.Zero
	}
	if dogWeight == nil || !breed.HasWeightPricing() {
		return decimal.Zero
	}
	if dogWeight.LessThanOrEqual(*breed.StartWeight) {
		return decimal.Zero
	}

	increments := dogWeight.Sub(*breed.StartWeight).Div(*breed.WeightIncrement).Floor()
	return increments.Mul(*breed.IncrementPrice)
}

// FinalPrice computes the total price for booking the given service on the
// given breed.
//
// base_required: breed base price + surcharge + service price.
// standalone: override price when an available override exists, otherwise
// the service price, plus surcharge. A breed without a base price
// contributes zero to base_required totals.
func FinalPrice(
	breed *domain.Breed,
	service *domain.Service,
	override *domain.BreedServiceOverride,
	dogWeight *decimal.Decimal,
) decimal.Decimal {
	surcharge := Surcharge(breed, service, dogWeight)

	if service.PricingMode == domain.PricingBaseRequired {
		base := decimal.Zero
		if breed.BasePrice != nil {
			base = *breed.BasePrice
		}
		return base.Add(surcharge).Add(service.Price)
	}

	price := service.Price
	if override != nil && override.IsAvailable {
		price = override.Price
	}
	return price.Add(surcharge)
}

// Breakdown returns the final price together with its components. The
// component amounts always sum exactly to the returned total; zero-valued
// components are omitted.
func Breakdown(
	breed *domain.Breed,
	service *domain.Service,
	override *domain.BreedServiceOverride,
	dogWeight *decimal.Decimal,
) (decimal.Decimal, []Component) {
	surcharge := Surcharge(breed, service, dogWeight)
	components := make([]Component, 0, 3)

	if service.PricingMode == domain.PricingBaseRequired {
		if breed.BasePrice != nil && !breed.BasePrice.IsZero() {
			components = append(components, Component{
				Label:  "Base groom (" + breed.Name + ")",
				Amount: *breed.BasePrice,
			})
		}
		components = append(components, Component{
			Label:  service.Name,
			Amount: service.Price,
		})
	} else {
		price := service.Price
		label := service.Name
		if override != nil && override.IsAvailable {
			price = override.Price
			label = service.Name + " (" + breed.Name + ")"
		}
		components = append(components, Component{Label: label, Amount: price})
	}

	if !surcharge.IsZero() {
		components = append(components, Component{
			Label:  "Weight surcharge",
			Amount: surcharge,
		})
	}

	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c.Amount)
	}
	return total, components
}
