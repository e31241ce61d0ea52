package create_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	"github.com/shampooches/GroomingBookingService/internal/service/schedule"
)

const (
	msgInvalidGroomerID   = "Invalid groomer ID."
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidInput       = "Some of the slot details are missing or invalid."
	msgGroomerNotFound    = "Groomer not found."
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/groomers/{groomerId}/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	groomerID, err := strconv.ParseInt(vars["groomerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /groomers/{id}/time-slots - Invalid groomer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroomerID)
		return
	}

	var req CreateTimeSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groomers/%d/time-slots - Invalid request body: %v", groomerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSlots(r.Context(), req.ToServiceRequest(groomerID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /groomers/%d/time-slots - Invalid input: %v", groomerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedule.ErrGroomerNotFound):
			h.logger.Warn("POST /groomers/%d/time-slots - Groomer not found", groomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		default:
			h.logger.Error("POST /groomers/%d/time-slots - Failed: %v", groomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groomers/%d/time-slots - Created %d slots, skipped %d",
		groomerID, len(result.Created), result.Skipped)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
