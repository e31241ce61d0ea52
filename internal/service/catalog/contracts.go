package catalog

import (
	"context"

	"github.com/shampooches/GroomingBookingService/internal/cache"
	"github.com/shampooches/GroomingBookingService/internal/domain"
)

// BreedRepository is the storage surface for breed catalog management
type BreedRepository interface {
	Create(ctx context.Context, b *domain.Breed) (*domain.Breed, error)
	Update(ctx context.Context, b *domain.Breed) error
	GetByID(ctx context.Context, id int64) (*domain.Breed, error)
	ListActive(ctx context.Context) ([]*domain.Breed, error)
}

// ServiceRepository resolves services and breed-specific price overrides
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]*domain.Service, error)
	GetOverride(ctx context.Context, breedID, serviceID int64) (*domain.BreedServiceOverride, error)
}

// GroomerRepository lists groomers for the booking page
type GroomerRepository interface {
	ListActive(ctx context.Context) ([]*domain.Groomer, error)
}

// Cache is the catalog read cache keyed by entity type
type Cache interface {
	Get(t cache.EntityType) (interface{}, bool)
	Set(t cache.EntityType, value interface{})
	Invalidate(t cache.EntityType)
}

// Logger is the leveled printf logger used across the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
