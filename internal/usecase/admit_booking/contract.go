package admit_booking

import (
	"context"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// AppointmentRepository persists appointments and answers conflict/cap queries
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	HasBlockingAppointment(ctx context.Context, groomerID int64, date time.Time, startTime types.TimeString, excludeCustomerID *int64) (bool, error)
	CountActiveByCustomerAndDate(ctx context.Context, customerID int64, date time.Time) (int, error)
}

// CustomerRepository resolves and maintains customer records
type CustomerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	UpdateContactInfo(ctx context.Context, id int64, name, phone string) error
}

// TimeSlotRepository looks up the slot being booked
type TimeSlotRepository interface {
	GetByGroomerDateTime(ctx context.Context, groomerID int64, date time.Time, startTime types.TimeString) (*domain.TimeSlot, error)
}

// BreedRepository resolves breeds
type BreedRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Breed, error)
}

// ServiceRepository resolves services and price overrides
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetOverride(ctx context.Context, breedID, serviceID int64) (*domain.BreedServiceOverride, error)
}

// GroomerRepository resolves groomers
type GroomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Groomer, error)
}

// SiteConfigRepository reads the salon-wide settings
type SiteConfigRepository interface {
	GetActive(ctx context.Context) (*domain.SiteConfig, error)
}

// TransactionManager runs the admission pipeline in one transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled printf logger used across the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
