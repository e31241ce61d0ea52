package price_preview

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	PricePreview(ctx context.Context, breedID, serviceID int64, dogWeight *decimal.Decimal) (*models.PricePreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
