package admit_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
	admitBooking "github.com/shampooches/GroomingBookingService/internal/usecase/admit_booking"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD."
	msgInvalidTime        = "Invalid start time format, expected HH:MM."
	msgInvalidInput       = "Some of the booking details are missing or invalid."
	msgGroomerNotFound    = "Groomer not found."
	msgBreedNotFound      = "Breed not found."
	msgServiceNotFound    = "Service not found."
	msgCustomerNotFound   = "Customer not found."
	msgSlotNotFound       = "The selected time slot does not exist."
	msgPastDate           = "Appointments cannot be booked in the past."
	msgInactiveService    = "This service is no longer offered."
	msgInactiveGroomer    = "This groomer is not taking appointments."
	msgSlotConflict       = "There is already an appointment booked on %s at %s. Please pick another slot."
	msgCapExceeded        = "You have reached the maximum number of bookings for this day."
)

type Handler struct {
	useCase AdmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase AdmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if types.TimeString(req.StartTime).Validate() != nil {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admitBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: groomer_id=%d, date=%s, time=%s",
				req.GroomerID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgSlotConflict, req.Date, req.StartTime))

		case errors.Is(err, admitBooking.ErrCapExceeded):
			h.logger.Warn("POST /bookings - Daily cap exceeded: email=%s, date=%s",
				req.CustomerEmail, req.Date)
			handlers.RespondBadRequest(w, msgCapExceeded)

		case errors.Is(err, admitBooking.ErrGroomerNotFound):
			h.logger.Warn("POST /bookings - Groomer not found: groomer_id=%d", req.GroomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, admitBooking.ErrBreedNotFound):
			h.logger.Warn("POST /bookings - Breed not found: breed_id=%d", req.BreedID)
			handlers.RespondNotFound(w, msgBreedNotFound)

		case errors.Is(err, admitBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, admitBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: email=%s", req.CustomerEmail)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, admitBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: groomer_id=%d, date=%s, time=%s",
				req.GroomerID, req.Date, req.StartTime)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, admitBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, admitBooking.ErrInactiveService):
			h.logger.Warn("POST /bookings - Inactive service: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgInactiveService)

		case errors.Is(err, admitBooking.ErrInactiveGroomer):
			h.logger.Warn("POST /bookings - Inactive groomer: groomer_id=%d", req.GroomerID)
			handlers.RespondBadRequest(w, msgInactiveGroomer)

		default:
			h.logger.Error("POST /bookings - Failed to admit booking: groomer_id=%d, error=%v",
				req.GroomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Appointment admitted: appointment_id=%d, price=%s",
		result.ID, result.PriceAtBooking)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
