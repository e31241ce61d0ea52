package models

import (
	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/internal/pricing"
)

// BreedRequest carries the catalog fields for creating or updating a breed
type BreedRequest struct {
	Name             string           `json:"name"`
	BasePrice        *decimal.Decimal `json:"basePrice,omitempty"`
	StartWeight      *decimal.Decimal `json:"startWeight,omitempty"`
	WeightIncrement  *decimal.Decimal `json:"weightIncrement,omitempty"`
	IncrementPrice   *decimal.Decimal `json:"incrementPrice,omitempty"`
	TypicalWeightMin *decimal.Decimal `json:"typicalWeightMin,omitempty"`
	TypicalWeightMax *decimal.Decimal `json:"typicalWeightMax,omitempty"`
	IsActive         bool             `json:"isActive"`
}

// ToDomainBreed converts the request into a domain breed
func (r *BreedRequest) ToDomainBreed() *domain.Breed {
	return &domain.Breed{
		Name:             r.Name,
		BasePrice:        r.BasePrice,
		StartWeight:      r.StartWeight,
		WeightIncrement:  r.WeightIncrement,
		IncrementPrice:   r.IncrementPrice,
		TypicalWeightMin: r.TypicalWeightMin,
		TypicalWeightMax: r.TypicalWeightMax,
		IsActive:         r.IsActive,
	}
}

// BreedResponse is the breed DTO
type BreedResponse struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	BasePrice        *decimal.Decimal `json:"basePrice,omitempty"`
	StartWeight      *decimal.Decimal `json:"startWeight,omitempty"`
	WeightIncrement  *decimal.Decimal `json:"weightIncrement,omitempty"`
	IncrementPrice   *decimal.Decimal `json:"incrementPrice,omitempty"`
	TypicalWeightMin *decimal.Decimal `json:"typicalWeightMin,omitempty"`
	TypicalWeightMax *decimal.Decimal `json:"typicalWeightMax,omitempty"`
	IsActive         bool             `json:"isActive"`
}

// FromDomainBreed converts a domain breed into a DTO
func FromDomainBreed(b *domain.Breed) *BreedResponse {
	if b == nil {
		return nil
	}

	return &BreedResponse{
		ID:               b.ID,
		Name:             b.Name,
		BasePrice:        b.BasePrice,
		StartWeight:      b.StartWeight,
		WeightIncrement:  b.WeightIncrement,
		IncrementPrice:   b.IncrementPrice,
		TypicalWeightMin: b.TypicalWeightMin,
		TypicalWeightMax: b.TypicalWeightMax,
		IsActive:         b.IsActive,
	}
}

// ServiceResponse is the service DTO
type ServiceResponse struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	Price               decimal.Decimal `json:"price"`
	PricingMode         string          `json:"pricingMode"`
	ExemptFromSurcharge bool            `json:"exemptFromSurcharge"`
	DurationMinutes     int             `json:"durationMinutes"`
}

// FromDomainService converts a domain service into a DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		Price:               s.Price,
		PricingMode:         string(s.PricingMode),
		ExemptFromSurcharge: s.ExemptFromSurcharge,
		DurationMinutes:     s.DurationMinutes,
	}
}

// GroomerResponse is the groomer DTO
type GroomerResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Bio         string  `json:"bio,omitempty"`
	Specialties *string `json:"specialties,omitempty"`
}

// FromDomainGroomer converts a domain groomer into a DTO
func FromDomainGroomer(g *domain.Groomer) *GroomerResponse {
	if g == nil {
		return nil
	}

	return &GroomerResponse{
		ID:          g.ID,
		Name:        g.Name,
		Bio:         g.Bio,
		Specialties: g.Specialties,
	}
}

// PriceComponent is one line of a price preview
type PriceComponent struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PricePreviewResponse is the quoted price for a breed/service/weight triple.
// Components always sum exactly to Total.
type PricePreviewResponse struct {
	Total      decimal.Decimal  `json:"total"`
	Components []PriceComponent `json:"components"`
}

// FromPricingBreakdown converts a pricing breakdown into a DTO
func FromPricingBreakdown(total decimal.Decimal, components []pricing.Component) *PricePreviewResponse {
	resp := &PricePreviewResponse{
		Total:      total,
		Components: make([]PriceComponent, 0, len(components)),
	}

	for _, c := range components {
		resp.Components = append(resp.Components, PriceComponent{Label: c.Label, Amount: c.Amount})
	}

	return resp
}
