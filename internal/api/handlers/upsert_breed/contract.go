package upsert_breed

import (
	"context"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateBreed(ctx context.Context, req models.BreedRequest) (*domain.Breed, error)
	UpdateBreed(ctx context.Context, breedID int64, req models.BreedRequest) (*domain.Breed, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
