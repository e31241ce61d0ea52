package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	groomerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/groomer"
)

// UseCase lists a groomer's open slots for a date.
//
// The read path runs without locks: availability may go stale the moment it
// is returned, and the admission pipeline re-checks under a lock anyway.
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        TimeSlotRepository
	groomerRepo     GroomerRepository
	logger          Logger
}

// NewUseCase creates the slot listing use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo TimeSlotRepository,
	groomerRepo GroomerRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		groomerRepo:     groomerRepo,
		logger:          logger,
	}
}

// Execute returns the groomer's open slots, ordered by start time
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: groomer=%d, date=%s",
		req.GroomerID, req.Date.Format(domain.DateFormat))

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Groomer must exist
	if _, err := uc.groomerRepo.GetByID(ctx, req.GroomerID); err != nil {
		if errors.Is(err, groomerRepo.ErrGroomerNotFound) {
			uc.logger.Warn("GetAvailableSlots: groomer id=%d not found", req.GroomerID)
			return nil, ErrGroomerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get groomer id=%d: %v", req.GroomerID, err)
		return nil, fmt.Errorf("%w: failed to get groomer: %v", ErrInternal, err)
	}

	// 3. Load the schedule (active slots, ordered by start time)
	slots, err := uc.slotRepo.ListActiveByGroomerAndDate(ctx, req.GroomerID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 4. Load the day's blocking appointments in one query
	blocking, err := uc.appointmentRepo.ListBlockingByGroomerAndDate(ctx, req.GroomerID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Keep slots with no blocking appointment under the exclusion rule
	available := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if slotBlocked(slot.StartTime, blocking, req.CustomerID) {
			continue
		}
		available = append(available, Slot{
			Time:                   slot.StartTime,
			Display:                displayTime(slot.StartTime),
			HasSameCustomerBooking: customerHoldsSlot(slot.StartTime, blocking, req.CustomerID),
		})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots open for groomer=%d on %s",
		len(available), len(slots), req.GroomerID, req.Date.Format(domain.DateFormat))

	return &Response{
		GroomerID: req.GroomerID,
		Date:      req.Date,
		Slots:     available,
	}, nil
}
