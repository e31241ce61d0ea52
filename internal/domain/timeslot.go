package domain

import (
	"time"

	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// TimeSlot represents a bookable opening in a groomer's schedule.
// A slot is capacity, not occupancy: whether it is free on a given day is
// decided by the blocking appointments at its start time.
// (groomer_id, date, start_time) is unique.
type TimeSlot struct {
	ID        int64
	GroomerID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
