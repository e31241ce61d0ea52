package get_catalog

import (
	"net/http"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	"github.com/shampooches/GroomingBookingService/internal/service/catalog/models"
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

// CatalogResponse bundles everything the booking page needs in one call
type CatalogResponse struct {
	Breeds   []models.BreedResponse   `json:"breeds"`
	Services []models.ServiceResponse `json:"services"`
	Groomers []models.GroomerResponse `json:"groomers"`
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	breeds, err := h.catalog.ActiveBreeds(ctx)
	if err != nil {
		h.logger.Error("GET /catalog - Failed to list breeds: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	services, err := h.catalog.ActiveServices(ctx)
	if err != nil {
		h.logger.Error("GET /catalog - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	groomers, err := h.catalog.ActiveGroomers(ctx)
	if err != nil {
		h.logger.Error("GET /catalog - Failed to list groomers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := CatalogResponse{
		Breeds:   make([]models.BreedResponse, 0, len(breeds)),
		Services: make([]models.ServiceResponse, 0, len(services)),
		Groomers: make([]models.GroomerResponse, 0, len(groomers)),
	}

	for _, b := range breeds {
		resp.Breeds = append(resp.Breeds, *models.FromDomainBreed(b))
	}
	for _, s := range services {
		resp.Services = append(resp.Services, *models.FromDomainService(s))
	}
	for _, g := range groomers {
		resp.Groomers = append(resp.Groomers, *models.FromDomainGroomer(g))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
