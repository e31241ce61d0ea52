package appointments

import (
	"context"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

// AppointmentRepository is the storage surface used by the service
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
	ListByGroomerAndDate(ctx context.Context, groomerID int64, date time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// Notifier receives status changes after they are committed. It must never
// fail the transition: delivery problems are its own concern.
type Notifier interface {
	NotifyStatusChange(appt *domain.Appointment, change domain.StatusChange)
}

// TransactionManager runs the read-validate-update sequence atomically
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the leveled printf logger used across the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
