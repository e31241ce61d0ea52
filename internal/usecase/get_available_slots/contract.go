package get_available_slots

import (
	"context"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

// AppointmentRepository supplies the blocking appointments for a day
type AppointmentRepository interface {
	ListBlockingByGroomerAndDate(ctx context.Context, groomerID int64, date time.Time) ([]*domain.Appointment, error)
}

// TimeSlotRepository supplies the groomer's schedule
type TimeSlotRepository interface {
	ListActiveByGroomerAndDate(ctx context.Context, groomerID int64, date time.Time) ([]*domain.TimeSlot, error)
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
