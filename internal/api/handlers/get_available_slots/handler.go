package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	"github.com/shampooches/GroomingBookingService/internal/domain"
	getAvailableSlots "github.com/shampooches/GroomingBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidGroomerID  = "Invalid groomer ID."
	msgInvalidDate       = "Invalid date format, expected YYYY-MM-DD."
	msgInvalidCustomerID = "Invalid customer ID."
	msgGroomerNotFound   = "Groomer not found."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/groomers/{groomerId}/available-slots?date=YYYY-MM-DD[&customerId=N]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	groomerID, err := strconv.ParseInt(vars["groomerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /groomers/{id}/available-slots - Invalid groomer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroomerID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /groomers/%d/available-slots - Invalid date: %v", groomerID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var customerID *int64
	if raw := r.URL.Query().Get("customerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /groomers/%d/available-slots - Invalid customer ID: %v", groomerID, err)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
			return
		}
		customerID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		GroomerID:  groomerID,
		Date:       date,
		CustomerID: customerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /groomers/%d/available-slots - Invalid input: %v", groomerID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrGroomerNotFound):
			h.logger.Warn("GET /groomers/%d/available-slots - Groomer not found", groomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		default:
			h.logger.Error("GET /groomers/%d/available-slots - Failed: %v", groomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
