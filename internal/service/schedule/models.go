package schedule

import "github.com/shampooches/GroomingBookingService/internal/domain"

// SlotInput is one requested opening within a bulk create
type SlotInput struct {
	StartTime string
	EndTime   string
}

// CreateSlotsRequest asks to add openings to a groomer's schedule for a date
type CreateSlotsRequest struct {
	GroomerID int64
	Date      string
	Slots     []SlotInput
}

// CreateSlotsResponse reports what the bulk create actually did.
// Slots that already existed are skipped, not failed.
type CreateSlotsResponse struct {
	Created []*domain.TimeSlot
	Skipped int
}
