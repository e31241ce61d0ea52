package create_time_slots

import (
	"context"

	"github.com/shampooches/GroomingBookingService/internal/service/schedule"
)

type ScheduleService interface {
	CreateSlots(ctx context.Context, req schedule.CreateSlotsRequest) (*schedule.CreateSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
