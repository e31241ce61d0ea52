package schedule

import (
	"context"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// TimeSlotRepository is the storage surface for schedule management
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository answers whether a slot is occupied
type AppointmentRepository interface {
	HasBlockingAppointment(ctx context.Context, groomerID int64, date time.Time, startTime types.TimeString, excludeCustomerID *int64) (bool, error)
}

// GroomerRepository resolves groomers
type GroomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Groomer, error)
}

// Logger is the leveled printf logger used across the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
