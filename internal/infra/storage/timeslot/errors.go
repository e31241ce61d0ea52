package timeslot

import "errors"

var (
	// ErrSlotNotFound is returned when no time slot matches
	ErrSlotNotFound = errors.New("timeslot.repository: time slot not found")

	// ErrSlotExists is returned when a slot with the same groomer, date
	// and start time already exists
	ErrSlotExists = errors.New("timeslot.repository: time slot already exists")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
