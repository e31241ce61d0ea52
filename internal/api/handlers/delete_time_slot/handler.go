package delete_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	"github.com/shampooches/GroomingBookingService/internal/service/schedule"
)

const (
	msgInvalidSlotID  = "Invalid time slot ID."
	msgSlotNotFound   = "Time slot not found."
	msgSlotHasBooking = "This time slot has a booked appointment and cannot be removed."
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

// Handle DELETE /api/v1/time-slots/{slotId}[?deactivate=true]
//
// With deactivate=true the slot is hidden from availability instead of
// deleted. Both paths refuse when the slot is occupied.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /time-slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	deactivate := r.URL.Query().Get("deactivate") == "true"

	if deactivate {
		err = h.service.DeactivateSlot(r.Context(), slotID)
	} else {
		err = h.service.DeleteSlot(r.Context(), slotID)
	}

	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("DELETE /time-slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrSlotHasBooking):
			h.logger.Warn("DELETE /time-slots/%d - Slot has a booked appointment", slotID)
			handlers.RespondConflict(w, msgSlotHasBooking)

		default:
			h.logger.Error("DELETE /time-slots/%d - Failed: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-slots/%d - Done (deactivate=%t)", slotID, deactivate)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
