package get_catalog

import (
	"context"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

type CatalogService interface {
	ActiveBreeds(ctx context.Context) ([]*domain.Breed, error)
	ActiveServices(ctx context.Context) ([]*domain.Service, error)
	ActiveGroomers(ctx context.Context) ([]*domain.Groomer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
