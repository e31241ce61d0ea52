package admit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	breedRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/breed"
	customerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/customer"
	groomerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/groomer"
	serviceRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/service"
	siteconfigRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/siteconfig"
	timeslotRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/timeslot"
	"github.com/shampooches/GroomingBookingService/internal/pricing"
)

// Postgres error codes translated into a slot conflict: a concurrent
// admission either won the serialization race or holds the slot lock.
const (
	pqSerializationFailure = "40001"
	pqLockNotAvailable     = "55P03"
)

// UseCase admits a booking request: it either produces a pending
// appointment with a price snapshot, or a typed rejection.
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	slotRepo        TimeSlotRepository
	breedRepo       BreedRepository
	serviceRepo     ServiceRepository
	groomerRepo     GroomerRepository
	siteConfigRepo  SiteConfigRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the admission use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	slotRepo TimeSlotRepository,
	breedRepo BreedRepository,
	serviceRepo ServiceRepository,
	groomerRepo GroomerRepository,
	siteConfigRepo SiteConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		slotRepo:        slotRepo,
		breedRepo:       breedRepo,
		serviceRepo:     serviceRepo,
		groomerRepo:     groomerRepo,
		siteConfigRepo:  siteConfigRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the admission pipeline. Everything after input validation
// happens inside one serializable transaction, with the target time slot
// locked FOR UPDATE, so two concurrent requests for the same slot cannot
// both pass the conflict check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitBooking: groomer=%d, service=%d, breed=%d, date=%s, time=%s",
		req.GroomerID, req.ServiceID, req.BreedID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Resolve the customer (linked account or guest by email)
		customer, err := uc.resolveCustomer(txCtx, req)
		if err != nil {
			return err
		}

		// 3. Resolve entities
		groomer, err := uc.groomerRepo.GetByID(txCtx, req.GroomerID)
		if err != nil {
			if errors.Is(err, groomerRepo.ErrGroomerNotFound) {
				uc.logger.Warn("AdmitBooking: groomer id=%d not found", req.GroomerID)
				return ErrGroomerNotFound
			}
			uc.logger.Error("AdmitBooking: failed to get groomer id=%d: %v", req.GroomerID, err)
			return fmt.Errorf("%w: failed to get groomer: %v", ErrInternal, err)
		}

		var preferredGroomer *domain.Groomer
		if req.PreferredGroomerID != nil {
			preferredGroomer, err = uc.groomerRepo.GetByID(txCtx, *req.PreferredGroomerID)
			if err != nil {
				if errors.Is(err, groomerRepo.ErrGroomerNotFound) {
					uc.logger.Warn("AdmitBooking: preferred groomer id=%d not found", *req.PreferredGroomerID)
					return ErrGroomerNotFound
				}
				uc.logger.Error("AdmitBooking: failed to get preferred groomer id=%d: %v", *req.PreferredGroomerID, err)
				return fmt.Errorf("%w: failed to get preferred groomer: %v", ErrInternal, err)
			}
		}

		breed, err := uc.breedRepo.GetByID(txCtx, req.BreedID)
		if err != nil {
			if errors.Is(err, breedRepo.ErrBreedNotFound) {
				uc.logger.Warn("AdmitBooking: breed id=%d not found", req.BreedID)
				return ErrBreedNotFound
			}
			uc.logger.Error("AdmitBooking: failed to get breed id=%d: %v", req.BreedID, err)
			return fmt.Errorf("%w: failed to get breed: %v", ErrInternal, err)
		}

		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("AdmitBooking: service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("AdmitBooking: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 4. Reject past dates
		if isDateInPast(req.Date, now) {
			uc.logger.Warn("AdmitBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
			return ErrPastDate
		}

		// 5. Reject inactive entities
		if !service.IsActive {
			uc.logger.Warn("AdmitBooking: service id=%d is inactive", service.ID)
			return ErrInactiveService
		}
		if !groomer.IsActive {
			uc.logger.Warn("AdmitBooking: groomer id=%d is inactive", groomer.ID)
			return ErrInactiveGroomer
		}
		if preferredGroomer != nil && !preferredGroomer.IsActive {
			uc.logger.Warn("AdmitBooking: preferred groomer id=%d is inactive", preferredGroomer.ID)
			return ErrInactiveGroomer
		}

		// 6. Lock the slot. It must exist and be active. The FOR UPDATE
		// lock serializes concurrent admissions for the same slot.
		slot, err := uc.slotRepo.GetByGroomerDateTime(txCtx, req.GroomerID, req.Date, req.StartTime)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("AdmitBooking: no slot for groomer=%d, date=%s, time=%s",
					req.GroomerID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotFound
			}
			uc.logger.Error("AdmitBooking: failed to get slot: %v", err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		if !slot.IsActive {
			uc.logger.Warn("AdmitBooking: slot id=%d is inactive", slot.ID)
			return ErrSlotNotFound
		}

		// 7. Conflict check. The customer's own active appointments do not
		// block (multi-dog exception); everything else does.
		blocked, err := uc.appointmentRepo.HasBlockingAppointment(
			txCtx, req.GroomerID, req.Date, req.StartTime, &customer.ID)
		if err != nil {
			uc.logger.Error("AdmitBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if blocked {
			uc.logger.Warn("AdmitBooking: slot taken, groomer=%d, date=%s, time=%s",
				req.GroomerID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotConflict
		}

		// 8. Daily cap
		maxPerDay, err := uc.maxBookingsPerDay(txCtx)
		if err != nil {
			return err
		}

		count, err := uc.appointmentRepo.CountActiveByCustomerAndDate(txCtx, customer.ID, req.Date)
		if err != nil {
			uc.logger.Error("AdmitBooking: cap count failed: %v", err)
			return fmt.Errorf("%w: cap count failed: %v", ErrInternal, err)
		}
		if count >= maxPerDay {
			uc.logger.Warn("AdmitBooking: customer id=%d reached daily cap (%d/%d) on %s",
				customer.ID, count, maxPerDay, req.Date.Format(domain.DateFormat))
			return ErrCapExceeded
		}

		// 9. Price snapshot and insert
		var override *domain.BreedServiceOverride
		if service.PricingMode == domain.PricingStandalone {
			override, err = uc.serviceRepo.GetOverride(txCtx, req.BreedID, req.ServiceID)
			if err != nil && !errors.Is(err, serviceRepo.ErrOverrideNotFound) {
				uc.logger.Error("AdmitBooking: failed to get override: %v", err)
				return fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
			}
		}

		price := pricing.FinalPrice(breed, service, override, &req.DogWeight)

		appt := &domain.Appointment{
			CustomerID:         customer.ID,
			UserID:             customer.UserID,
			ServiceID:          req.ServiceID,
			GroomerID:          req.GroomerID,
			PreferredGroomerID: req.PreferredGroomerID,
			BreedID:            req.BreedID,
			DogName:            strings.TrimSpace(req.DogName),
			DogWeight:          req.DogWeight,
			DogAge:             strings.TrimSpace(req.DogAge),
			Date:               req.Date,
			StartTime:          req.StartTime,
			Status:             domain.StatusPending,
			Notes:              req.Notes,
			PriceAtBooking:     price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// A serialization failure means a concurrent admission won the
		// slot; surface it as a conflict, not an internal error.
		if isConcurrencyConflict(err) {
			uc.logger.Warn("AdmitBooking: concurrent admission lost the race: %v", err)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("AdmitBooking: admitted appointment id=%d, customer=%d, price=%s",
		result.ID, result.CustomerID, result.PriceAtBooking)

	return &Response{
		ID:                 result.ID,
		CustomerID:         result.CustomerID,
		UserID:             result.UserID,
		ServiceID:          result.ServiceID,
		GroomerID:          result.GroomerID,
		PreferredGroomerID: result.PreferredGroomerID,
		BreedID:            result.BreedID,
		DogName:            result.DogName,
		DogWeight:          result.DogWeight,
		DogAge:             result.DogAge,
		Date:               result.Date,
		StartTime:          result.StartTime,
		Status:             string(result.Status),
		Notes:              result.Notes,
		PriceAtBooking:     result.PriceAtBooking,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}

// resolveCustomer loads the customer for a linked user, or gets-or-creates
// a guest record by email. Contact details from the booking form win over
// whatever is stored.
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (*domain.Customer, error) {
	if req.UserID != nil {
		customer, err := uc.customerRepo.GetByUserID(ctx, *req.UserID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("AdmitBooking: no customer for user id=%d", *req.UserID)
				return nil, ErrCustomerNotFound
			}
			uc.logger.Error("AdmitBooking: failed to get customer for user id=%d: %v", *req.UserID, err)
			return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}

		if customer.Name != req.CustomerName || customer.Phone != req.CustomerPhone {
			if err := uc.customerRepo.UpdateContactInfo(ctx, customer.ID, req.CustomerName, req.CustomerPhone); err != nil {
				uc.logger.Error("AdmitBooking: failed to refresh contact info for customer id=%d: %v", customer.ID, err)
				return nil, fmt.Errorf("%w: failed to refresh contact info: %v", ErrInternal, err)
			}
			customer.Name = req.CustomerName
			customer.Phone = req.CustomerPhone
		}

		return customer, nil
	}

	customer, err := uc.customerRepo.GetByEmail(ctx, req.CustomerEmail)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			created, createErr := uc.customerRepo.Create(ctx, &domain.Customer{
				Name:    req.CustomerName,
				Email:   req.CustomerEmail,
				Phone:   req.CustomerPhone,
				Address: req.CustomerAddress,
			})
			if createErr != nil {
				uc.logger.Error("AdmitBooking: failed to create guest customer: %v", createErr)
				return nil, fmt.Errorf("%w: failed to create customer: %v", ErrInternal, createErr)
			}
			uc.logger.Info("AdmitBooking: created guest customer id=%d", created.ID)
			return created, nil
		}
		uc.logger.Error("AdmitBooking: failed to get customer by email: %v", err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	if customer.Name != req.CustomerName || customer.Phone != req.CustomerPhone {
		if err := uc.customerRepo.UpdateContactInfo(ctx, customer.ID, req.CustomerName, req.CustomerPhone); err != nil {
			uc.logger.Error("AdmitBooking: failed to refresh contact info for customer id=%d: %v", customer.ID, err)
			return nil, fmt.Errorf("%w: failed to refresh contact info: %v", ErrInternal, err)
		}
		customer.Name = req.CustomerName
		customer.Phone = req.CustomerPhone
	}

	return customer, nil
}

// maxBookingsPerDay reads the active site config, falling back to the
// default cap when no config row is active.
func (uc *UseCase) maxBookingsPerDay(ctx context.Context) (int, error) {
	cfg, err := uc.siteConfigRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, siteconfigRepo.ErrConfigNotFound) {
			return domain.DefaultMaxBookingsPerCustomerPerDay, nil
		}
		uc.logger.Error("AdmitBooking: failed to get site config: %v", err)
		return 0, fmt.Errorf("%w: failed to get site config: %v", ErrInternal, err)
	}
	if cfg.MaxBookingsPerCustomerPerDay <= 0 {
		return domain.DefaultMaxBookingsPerCustomerPerDay, nil
	}
	return cfg.MaxBookingsPerCustomerPerDay, nil
}

// isConcurrencyConflict detects Postgres serialization and lock failures
func isConcurrencyConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	code := string(pqErr.Code)
	return code == pqSerializationFailure || code == pqLockNotAvailable
}
