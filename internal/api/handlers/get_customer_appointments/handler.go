package get_customer_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
)

const msgInvalidCustomerID = "Invalid customer ID."

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/%d/appointments - Failed: %v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
