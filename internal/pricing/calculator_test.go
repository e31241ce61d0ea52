package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// goldenRetriever has base price 50 and surcharge steps of 15 per full
// 10 lbs above 15 lbs.
func goldenRetriever() *domain.Breed {
	return &domain.Breed{
		ID:              1,
		Name:            "Golden Retriever",
		BasePrice:       decPtr("50.00"),
		StartWeight:     decPtr("15"),
		WeightIncrement: decPtr("10"),
		IncrementPrice:  decPtr("15.00"),
		IsActive:        true,
	}
}

func fullGroom() *domain.Service {
	return &domain.Service{
		ID:          1,
		Name:        "Full Groom Add-on",
		Price:       dec("30.00"),
		PricingMode: domain.PricingBaseRequired,
		IsActive:    true,
	}
}

func nailTrim() *domain.Service {
	return &domain.Service{
		ID:                  2,
		Name:                "Nail Trim",
		Price:               dec("15.00"),
		PricingMode:         domain.PricingStandalone,
		ExemptFromSurcharge: true,
		IsActive:            true,
	}
}

func TestSurcharge_FloorDivision(t *testing.T) {
	breed := goldenRetriever()
	service := fullGroom()

	tests := []struct {
		name   string
		weight string
		want   string
	}{
		{"at start weight", "15", "0"},
		{"just below one increment", "24.99", "0"},
		{"exactly one increment", "25.0", "15.00"},
		{"just below two increments", "34.99", "15.00"},
		{"exactly two increments", "35.0", "30.00"},
		{"below start weight", "10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Surcharge(breed, service, decPtr(tt.weight))
			assert.True(t, got.Equal(dec(tt.want)),
				"weight %s: want %s, got %s", tt.weight, tt.want, got)
		})
	}
}

func TestSurcharge_NilWeight(t *testing.T) {
	got := Surcharge(goldenRetriever(), fullGroom(), nil)
	assert.True(t, got.IsZero())
}

func TestSurcharge_ExemptService(t *testing.T) {
	got := Surcharge(goldenRetriever(), nailTrim(), decPtr("80"))
	assert.True(t, got.IsZero())
}

func TestSurcharge_BreedWithoutWeightPricing(t *testing.T) {
	breed := &domain.Breed{ID: 2, Name: "Chihuahua", BasePrice: decPtr("35.00")}
	got := Surcharge(breed, fullGroom(), decPtr("80"))
	assert.True(t, got.IsZero())
}

func TestFinalPrice_BaseRequired(t *testing.T) {
	// base 50 + surcharge 30 (35 lbs = two full increments) + service 20
	breed := goldenRetriever()
	service := &domain.Service{
		ID:          3,
		Name:        "Teeth Brushing",
		Price:       dec("20.00"),
		PricingMode: domain.PricingBaseRequired,
	}

	got := FinalPrice(breed, service, nil, decPtr("35.0"))
	assert.True(t, got.Equal(dec("100.00")), "want 100.00, got %s", got)
}

func TestFinalPrice_StandaloneExempt(t *testing.T) {
	// Exempt standalone service: flat price regardless of weight.
	got := FinalPrice(goldenRetriever(), nailTrim(), nil, decPtr("95"))
	assert.True(t, got.Equal(dec("15.00")), "want 15.00, got %s", got)
}

func TestFinalPrice_StandaloneOverride(t *testing.T) {
	breed := goldenRetriever()
	service := &domain.Service{
		ID:          4,
		Name:        "Bath & Brush",
		Price:       dec("40.00"),
		PricingMode: domain.PricingStandalone,
	}

	t.Run("available override replaces service price", func(t *testing.T) {
		override := &domain.BreedServiceOverride{
			BreedID: breed.ID, ServiceID: service.ID,
			Price: dec("55.00"), IsAvailable: true,
		}
		got := FinalPrice(breed, service, override, nil)
		assert.True(t, got.Equal(dec("55.00")), "got %s", got)
	})

	t.Run("unavailable override is ignored", func(t *testing.T) {
		override := &domain.BreedServiceOverride{
			BreedID: breed.ID, ServiceID: service.ID,
			Price: dec("55.00"), IsAvailable: false,
		}
		got := FinalPrice(breed, service, override, nil)
		assert.True(t, got.Equal(dec("40.00")), "got %s", got)
	})

	t.Run("override plus surcharge", func(t *testing.T) {
		override := &domain.BreedServiceOverride{
			BreedID: breed.ID, ServiceID: service.ID,
			Price: dec("55.00"), IsAvailable: true,
		}
		got := FinalPrice(breed, service, override, decPtr("25.0"))
		assert.True(t, got.Equal(dec("70.00")), "got %s", got)
	})
}

func TestFinalPrice_BaseRequiredWithoutBasePrice(t *testing.T) {
	breed := &domain.Breed{ID: 5, Name: "Mixed", IsActive: true}
	got := FinalPrice(breed, fullGroom(), nil, nil)
	assert.True(t, got.Equal(dec("30.00")), "got %s", got)
}

func TestBreakdown_SumsToFinalPrice(t *testing.T) {
	breed := goldenRetriever()
	service := fullGroom()
	weight := decPtr("35.0")

	total, components := Breakdown(breed, service, nil, weight)
	require.NotEmpty(t, components)

	sum := decimal.Zero
	for _, c := range components {
		sum = sum.Add(c.Amount)
	}
	assert.True(t, sum.Equal(total), "components sum %s != total %s", sum, total)
	assert.True(t, total.Equal(FinalPrice(breed, service, nil, weight)))

	// base + service + surcharge
	assert.Len(t, components, 3)
}

func TestBreakdown_OmitsZeroComponents(t *testing.T) {
	total, components := Breakdown(goldenRetriever(), nailTrim(), nil, decPtr("80"))
	assert.True(t, total.Equal(dec("15.00")))
	assert.Len(t, components, 1)
	assert.Equal(t, "Nail Trim", components[0].Label)
}
