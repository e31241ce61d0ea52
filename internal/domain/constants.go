package domain

// Default configuration values
const (
	DefaultMaxBookingsPerCustomerPerDay = 3
)

// Business validation constants
const (
	MaxNotesLength   = 500
	MaxDogNameLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DisplayTimeFormat is the customer-facing slot label ("3:00 PM")
	DisplayTimeFormat = "3:04 PM"
)

// BlockingStatuses occupy a time slot and make it unavailable to other
// customers. Completed appointments keep blocking so historic days stay
// consistent.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// ActiveStatuses are upcoming appointments. Used for the daily cap and for
// the same-customer exclusion in conflict checks.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// StatusStrings converts a status slice for use in SQL IN clauses.
func StatusStrings(statuses []AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
