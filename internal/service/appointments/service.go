package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	appointmentRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/appointment"
	"github.com/shampooches/GroomingBookingService/internal/service/appointments/models"
)

// Service manages appointment reads and status transitions
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewService creates the appointments service
func NewService(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID fetches one appointment
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByCustomer fetches a customer's appointment history, newest first
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByCustomer: fetching appointments for customer=%d", customerID)

	appointments, err := s.appointmentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// ListByGroomerAndDate fetches a groomer's schedule for a date
func (s *Service) ListByGroomerAndDate(ctx context.Context, groomerID int64, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByGroomerAndDate: groomer=%d, date=%s", groomerID, date.Format(domain.DateFormat))

	appointments, err := s.appointmentRepo.ListByGroomerAndDate(ctx, groomerID, date)
	if err != nil {
		s.logger.Error("ListByGroomerAndDate: repository error for groomer=%d: %v", groomerID, err)
		return nil, fmt.Errorf("%w: ListByGroomerAndDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus moves an appointment to a new status and reports the
// transition that actually happened.
//
// The read-validate-update sequence runs in one transaction with the row
// locked, so concurrent transitions cannot interleave. The notifier is
// invoked only after the commit, with the explicit previous/new pair; a
// notifier failure never undoes the transition.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.StatusChangeResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var appt *domain.Appointment
	var change domain.StatusChange

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !current.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
				current.Status, newStatus, id)
			return ErrInvalidTransition
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - update failed: %v", ErrInternal, err)
		}

		change = domain.StatusChange{
			AppointmentID: id,
			Previous:      current.Status,
			New:           newStatus,
		}
		current.Status = newStatus
		appt = current
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved %s -> %s", id, change.Previous, change.New)

	// Fire-and-forget: the transition is already committed.
	go s.notifier.NotifyStatusChange(appt, change)

	return &models.StatusChangeResponse{
		AppointmentID:  change.AppointmentID,
		PreviousStatus: string(change.Previous),
		NewStatus:      string(change.New),
	}, nil
}
