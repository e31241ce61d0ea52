package get_available_slots

import (
	"time"

	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// Request asks for a groomer's open slots on a date. CustomerID, when set,
// applies the same-customer exclusion and flags slots the customer already
// holds.
type Request struct {
	GroomerID  int64
	Date       time.Time
	CustomerID *int64
}

// Slot is one bookable opening
type Slot struct {
	Time    types.TimeString
	Display string // customer-facing label, e.g. "3:00 PM"

	// HasSameCustomerBooking marks slots where the requesting customer
	// already has an active appointment (bookable again for another dog).
	HasSameCustomerBooking bool
}

// Response lists the open slots, ordered by start time
type Response struct {
	GroomerID int64
	Date      time.Time
	Slots     []Slot
}
