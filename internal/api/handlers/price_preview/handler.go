package price_preview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	"github.com/shampooches/GroomingBookingService/internal/service/catalog"
)

const (
	msgInvalidBreedID   = "Invalid breed ID."
	msgInvalidServiceID = "Invalid service ID."
	msgInvalidWeight    = "Invalid dog weight."
	msgInvalidInput     = "Breed and service are required for a price preview."
	msgBreedNotFound    = "Breed not found."
	msgServiceNotFound  = "Service not found."
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalogService,
		logger:  logger,
	}
}

// Handle GET /api/v1/price-preview?breedId=N&serviceId=N[&weight=W]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	breedID, err := strconv.ParseInt(query.Get("breedId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /price-preview - Invalid breed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBreedID)
		return
	}

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /price-preview - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var weight *decimal.Decimal
	if raw := query.Get("weight"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			h.logger.Warn("GET /price-preview - Invalid weight: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeight)
			return
		}
		weight = &d
	}

	result, err := h.catalog.PricePreview(r.Context(), breedID, serviceID, weight)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /price-preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalog.ErrBreedNotFound):
			h.logger.Warn("GET /price-preview - Breed not found: breed_id=%d", breedID)
			handlers.RespondNotFound(w, msgBreedNotFound)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /price-preview - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /price-preview - Failed: breed_id=%d, service_id=%d, error=%v",
				breedID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
