package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/internal/cache"
	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/internal/infra/storage/breed"
	"github.com/shampooches/GroomingBookingService/internal/infra/storage/service"
	"github.com/shampooches/GroomingBookingService/internal/pricing"
	"github.com/shampooches/GroomingBookingService/internal/service/catalog/models"
)

// Service serves the grooming catalog: breeds, services, groomers and price
// previews. Reads go through a TTL cache; every catalog write invalidates the
// affected entity type so the next read refetches.
type Service struct {
	breedRepo   BreedRepository
	serviceRepo ServiceRepository
	groomerRepo GroomerRepository
	cache       Cache
	logger      Logger
}

// NewService creates a catalog service
func NewService(
	breedRepo BreedRepository,
	serviceRepo ServiceRepository,
	groomerRepo GroomerRepository,
	c Cache,
	logger Logger,
) *Service {
	return &Service{
		breedRepo:   breedRepo,
		serviceRepo: serviceRepo,
		groomerRepo: groomerRepo,
		cache:       c,
		logger:      logger,
	}
}

// ActiveBreeds returns the active breeds, cached
func (s *Service) ActiveBreeds(ctx context.Context) ([]*domain.Breed, error) {
	if v, ok := s.cache.Get(cache.EntityBreed); ok {
		return v.([]*domain.Breed), nil
	}

	breeds, err := s.breedRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ActiveBreeds: failed to list breeds: %v", err)
		return nil, fmt.Errorf("%w: failed to list breeds: %v", ErrInternal, err)
	}

	s.cache.Set(cache.EntityBreed, breeds)
	return breeds, nil
}

// ActiveServices returns the active services, cached
func (s *Service) ActiveServices(ctx context.Context) ([]*domain.Service, error) {
	if v, ok := s.cache.Get(cache.EntityService); ok {
		return v.([]*domain.Service), nil
	}

	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ActiveServices: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	s.cache.Set(cache.EntityService, services)
	return services, nil
}

// ActiveGroomers returns the active groomers, cached
func (s *Service) ActiveGroomers(ctx context.Context) ([]*domain.Groomer, error) {
	if v, ok := s.cache.Get(cache.EntityGroomer); ok {
		return v.([]*domain.Groomer), nil
	}

	groomers, err := s.groomerRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ActiveGroomers: failed to list groomers: %v", err)
		return nil, fmt.Errorf("%w: failed to list groomers: %v", ErrInternal, err)
	}

	s.cache.Set(cache.EntityGroomer, groomers)
	return groomers, nil
}

// CreateBreed adds a breed to the catalog
func (s *Service) CreateBreed(ctx context.Context, req models.BreedRequest) (*domain.Breed, error) {
	b := req.ToDomainBreed()

	if err := s.validateBreed(b); err != nil {
		return nil, err
	}

	created, err := s.breedRepo.Create(ctx, b)
	if err != nil {
		s.logger.Error("CreateBreed: failed to create breed %q: %v", b.Name, err)
		return nil, fmt.Errorf("%w: failed to create breed: %v", ErrInternal, err)
	}

	s.cache.Invalidate(cache.EntityBreed)
	s.logger.Info("CreateBreed: created breed id=%d name=%q", created.ID, created.Name)

	return created, nil
}

// UpdateBreed rewrites a breed's catalog fields
func (s *Service) UpdateBreed(ctx context.Context, breedID int64, req models.BreedRequest) (*domain.Breed, error) {
	if breedID <= 0 {
		return nil, fmt.Errorf("%w: breed id must be positive", ErrInvalidInput)
	}

	b := req.ToDomainBreed()
	b.ID = breedID

	if err := s.validateBreed(b); err != nil {
		return nil, err
	}

	if err := s.breedRepo.Update(ctx, b); err != nil {
		if errors.Is(err, breed.ErrBreedNotFound) {
			return nil, ErrBreedNotFound
		}
		s.logger.Error("UpdateBreed: failed to update breed id=%d: %v", breedID, err)
		return nil, fmt.Errorf("%w: failed to update breed: %v", ErrInternal, err)
	}

	s.cache.Invalidate(cache.EntityBreed)
	s.logger.Info("UpdateBreed: updated breed id=%d", breedID)

	return b, nil
}

// PricePreview quotes a breed/service pair before the customer commits.
// The quote uses the same calculation as admission, so the preview never
// disagrees with the price locked at booking.
func (s *Service) PricePreview(
	ctx context.Context,
	breedID, serviceID int64,
	dogWeight *decimal.Decimal,
) (*models.PricePreviewResponse, error) {
	if breedID <= 0 || serviceID <= 0 {
		return nil, fmt.Errorf("%w: breed id and service id must be positive", ErrInvalidInput)
	}
	if dogWeight != nil && !dogWeight.IsPositive() {
		return nil, fmt.Errorf("%w: dog weight must be positive", ErrInvalidInput)
	}

	b, err := s.breedRepo.GetByID(ctx, breedID)
	if err != nil {
		if errors.Is(err, breed.ErrBreedNotFound) {
			return nil, ErrBreedNotFound
		}
		s.logger.Error("PricePreview: failed to get breed id=%d: %v", breedID, err)
		return nil, fmt.Errorf("%w: failed to get breed: %v", ErrInternal, err)
	}

	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("PricePreview: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Overrides only apply to standalone services.
	var override *domain.BreedServiceOverride
	if svc.PricingMode == domain.PricingStandalone {
		override, err = s.serviceRepo.GetOverride(ctx, breedID, serviceID)
		if err != nil && !errors.Is(err, service.ErrOverrideNotFound) {
			s.logger.Error("PricePreview: failed to get override breed=%d service=%d: %v",
				breedID, serviceID, err)
			return nil, fmt.Errorf("%w: failed to get price override: %v", ErrInternal, err)
		}
	}

	total, components := pricing.Breakdown(b, svc, override, dogWeight)

	return models.FromPricingBreakdown(total, components), nil
}

func (s *Service) validateBreed(b *domain.Breed) error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: breed name is required", ErrInvalidInput)
	}

	if b.BasePrice != nil && b.BasePrice.IsNegative() {
		return fmt.Errorf("%w: base price cannot be negative", ErrInvalidInput)
	}

	if b.HasPartialWeightPricing() {
		return ErrPartialWeightPricing
	}

	for _, v := range []*decimal.Decimal{b.StartWeight, b.WeightIncrement, b.IncrementPrice} {
		if v != nil && v.IsNegative() {
			return fmt.Errorf("%w: surcharge parameters cannot be negative", ErrInvalidInput)
		}
	}

	if b.TypicalWeightMin != nil && b.TypicalWeightMax != nil &&
		b.TypicalWeightMin.GreaterThan(*b.TypicalWeightMax) {
		return fmt.Errorf("%w: typical weight minimum cannot exceed maximum", ErrInvalidInput)
	}

	return nil
}
