package get_groomer_appointments

import (
	"context"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListByGroomerAndDate(ctx context.Context, groomerID int64, date time.Time) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
