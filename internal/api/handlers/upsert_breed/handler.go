package upsert_breed

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	"github.com/shampooches/GroomingBookingService/internal/service/catalog"
	"github.com/shampooches/GroomingBookingService/internal/service/catalog/models"
)

const (
	msgInvalidBreedID       = "Invalid breed ID."
	msgInvalidRequestBody   = "Invalid request body."
	msgInvalidInput         = "Some of the breed details are missing or invalid."
	msgPartialWeightPricing = "Start weight, weight increment and increment price must be set together."
	msgBreedNotFound        = "Breed not found."
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

// HandleCreate POST /api/v1/breeds
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.BreedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /breeds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	breed, err := h.catalog.CreateBreed(r.Context(), req)
	if err != nil {
		h.respondError(w, err, "POST /breeds", 0)
		return
	}

	h.logger.Info("POST /breeds - Created breed id=%d name=%q", breed.ID, breed.Name)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBreed(breed))
}

// HandleUpdate PUT /api/v1/breeds/{breedId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	breedID, err := strconv.ParseInt(vars["breedId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /breeds/{id} - Invalid breed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBreedID)
		return
	}

	var req models.BreedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /breeds/%d - Invalid request body: %v", breedID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	breed, err := h.catalog.UpdateBreed(r.Context(), breedID, req)
	if err != nil {
		h.respondError(w, err, "PUT /breeds", breedID)
		return
	}

	h.logger.Info("PUT /breeds/%d - Updated breed", breedID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBreed(breed))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, route string, breedID int64) {
	switch {
	case errors.Is(err, catalog.ErrPartialWeightPricing):
		h.logger.Warn("%s - Partial weight pricing: breed_id=%d", route, breedID)
		handlers.RespondBadRequest(w, msgPartialWeightPricing)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, catalog.ErrBreedNotFound):
		h.logger.Warn("%s - Breed not found: breed_id=%d", route, breedID)
		handlers.RespondNotFound(w, msgBreedNotFound)

	default:
		h.logger.Error("%s - Failed: breed_id=%d, error=%v", route, breedID, err)
		handlers.RespondInternalError(w)
	}
}
