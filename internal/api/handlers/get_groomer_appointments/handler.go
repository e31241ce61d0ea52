package get_groomer_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	"github.com/shampooches/GroomingBookingService/internal/domain"
)

const (
	msgInvalidGroomerID = "Invalid groomer ID."
	msgInvalidDate      = "Invalid date format, expected YYYY-MM-DD."
)

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

// Handle GET /api/v1/groomers/{groomerId}/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	groomerID, err := strconv.ParseInt(vars["groomerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /groomers/{id}/appointments - Invalid groomer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroomerID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /groomers/%d/appointments - Invalid date: %v", groomerID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByGroomerAndDate(r.Context(), groomerID, date)
	if err != nil {
		h.logger.Error("GET /groomers/%d/appointments - Failed: %v", groomerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
