package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/internal/infra/storage/groomer"
	"github.com/shampooches/GroomingBookingService/internal/infra/storage/timeslot"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// Service manages groomer schedules: bulk slot creation and guarded removal.
// Removal is guarded because deleting a slot under a booked appointment would
// orphan the appointment.
type Service struct {
	slotRepo        TimeSlotRepository
	appointmentRepo AppointmentRepository
	groomerRepo     GroomerRepository
	logger          Logger
}

// NewService creates a schedule service
func NewService(
	slotRepo TimeSlotRepository,
	appointmentRepo AppointmentRepository,
	groomerRepo GroomerRepository,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		groomerRepo:     groomerRepo,
		logger:          logger,
	}
}

// CreateSlots adds openings to a groomer's schedule. Slots that already
// exist for (groomer, date, start time) are skipped rather than failed, so
// re-submitting a weekly template is safe.
func (s *Service) CreateSlots(ctx context.Context, req CreateSlotsRequest) (*CreateSlotsResponse, error) {
	// 1. Validate the request
	date, err := s.validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	// 2. The groomer must exist
	if _, err := s.groomerRepo.GetByID(ctx, req.GroomerID); err != nil {
		if errors.Is(err, groomer.ErrGroomerNotFound) {
			return nil, ErrGroomerNotFound
		}
		s.logger.Error("CreateSlots: failed to get groomer id=%d: %v", req.GroomerID, err)
		return nil, fmt.Errorf("%w: failed to get groomer: %v", ErrInternal, err)
	}

	// 3. Create each slot, skipping duplicates
	resp := &CreateSlotsResponse{Created: make([]*domain.TimeSlot, 0, len(req.Slots))}

	for _, in := range req.Slots {
		slot := &domain.TimeSlot{
			GroomerID: req.GroomerID,
			Date:      date,
			StartTime: types.TimeString(in.StartTime),
			EndTime:   types.TimeString(in.EndTime),
			IsActive:  true,
		}

		created, err := s.slotRepo.Create(ctx, slot)
		if err != nil {
			if errors.Is(err, timeslot.ErrSlotExists) {
				resp.Skipped++
				continue
			}
			s.logger.Error("CreateSlots: failed to create slot %s for groomer id=%d: %v",
				in.StartTime, req.GroomerID, err)
			return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		resp.Created = append(resp.Created, created)
	}

	s.logger.Info("CreateSlots: groomer id=%d date=%s created=%d skipped=%d",
		req.GroomerID, req.Date, len(resp.Created), resp.Skipped)

	return resp, nil
}

// DeleteSlot removes a slot from the schedule. Refused when a blocking
// appointment occupies the slot.
func (s *Service) DeleteSlot(ctx context.Context, slotID int64) error {
	if err := s.guardUnoccupied(ctx, slotID, "DeleteSlot"); err != nil {
		return err
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, timeslot.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: failed to delete slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSlot: deleted slot id=%d", slotID)
	return nil
}

// DeactivateSlot hides a slot from availability without deleting it.
// The same occupancy guard applies: deactivating a booked slot would strand
// the appointment outside the visible schedule.
func (s *Service) DeactivateSlot(ctx context.Context, slotID int64) error {
	if err := s.guardUnoccupied(ctx, slotID, "DeactivateSlot"); err != nil {
		return err
	}

	if err := s.slotRepo.Deactivate(ctx, slotID); err != nil {
		if errors.Is(err, timeslot.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("DeactivateSlot: failed to deactivate slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: failed to deactivate slot: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateSlot: deactivated slot id=%d", slotID)
	return nil
}

func (s *Service) guardUnoccupied(ctx context.Context, slotID int64, op string) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, timeslot.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("%s: failed to get slot id=%d: %v", op, slotID, err)
		return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	occupied, err := s.appointmentRepo.HasBlockingAppointment(ctx, slot.GroomerID, slot.Date, slot.StartTime, nil)
	if err != nil {
		s.logger.Error("%s: failed to check occupancy for slot id=%d: %v", op, slotID, err)
		return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
	}

	if occupied {
		s.logger.Warn("%s: refused, slot id=%d has a booked appointment", op, slotID)
		return ErrSlotHasBooking
	}

	return nil
}

func (s *Service) validateCreateRequest(req CreateSlotsRequest) (time.Time, error) {
	if req.GroomerID <= 0 {
		return time.Time{}, fmt.Errorf("%w: groomer id must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return time.Time{}, fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	for _, in := range req.Slots {
		start := types.TimeString(in.StartTime)
		end := types.TimeString(in.EndTime)

		if err := start.Validate(); err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, in.StartTime)
		}
		if err := end.Validate(); err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid end time %q", ErrInvalidInput, in.EndTime)
		}
		if !start.IsBefore(end) {
			return time.Time{}, fmt.Errorf("%w: start time %s must be before end time %s",
				ErrInvalidInput, in.StartTime, in.EndTime)
		}
	}

	return date, nil
}
