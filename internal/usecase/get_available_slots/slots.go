package get_available_slots

import (
	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// slotBlocked reports whether any blocking appointment occupies the slot's
// start time. The requesting customer's own active appointments do not
// block (they may book another dog into the same slot); their completed
// appointments still do.
func slotBlocked(startTime types.TimeString, blocking []*domain.Appointment, customerID *int64) bool {
	for _, appt := range blocking {
		if appt.StartTime != startTime {
			continue
		}
		if customerID != nil && appt.CustomerID == *customerID && appt.IsActive() {
			continue
		}
		return true
	}
	return false
}

// customerHoldsSlot reports whether the customer has an active appointment
// at the slot's start time
func customerHoldsSlot(startTime types.TimeString, blocking []*domain.Appointment, customerID *int64) bool {
	if customerID == nil {
		return false
	}
	for _, appt := range blocking {
		if appt.StartTime == startTime && appt.CustomerID == *customerID && appt.IsActive() {
			return true
		}
	}
	return false
}

// displayTime renders a slot time as the customer-facing label. Falls back
// to the raw HH:MM value if the stored time is malformed.
func displayTime(t types.TimeString) string {
	formatted, err := t.Format(domain.DisplayTimeFormat)
	if err != nil {
		return t.String()
	}
	return formatted
}
