package admit_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("admit_booking: invalid input data")

	// ErrGroomerNotFound is returned when the groomer does not exist
	ErrGroomerNotFound = errors.New("admit_booking: groomer not found")

	// ErrBreedNotFound is returned when the breed does not exist
	ErrBreedNotFound = errors.New("admit_booking: breed not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("admit_booking: service not found")

	// ErrCustomerNotFound is returned when no customer is linked to the user
	ErrCustomerNotFound = errors.New("admit_booking: customer not found")

	// ErrSlotNotFound is returned when no active time slot exists at the
	// requested groomer, date and time
	ErrSlotNotFound = errors.New("admit_booking: time slot not found")

	// ErrPastDate is returned when the requested date is before today
	ErrPastDate = errors.New("admit_booking: date is in the past")

	// ErrInactiveService is returned when the service is not offered anymore
	ErrInactiveService = errors.New("admit_booking: service is inactive")

	// ErrInactiveGroomer is returned when the groomer is not taking bookings
	ErrInactiveGroomer = errors.New("admit_booking: groomer is inactive")

	// ErrSlotConflict is returned when another customer holds a blocking
	// appointment at the requested time, or when a concurrent admission won
	// the race for the slot
	ErrSlotConflict = errors.New("admit_booking: slot already booked")

	// ErrCapExceeded is returned when the customer already has the maximum
	// number of active bookings for that day
	ErrCapExceeded = errors.New("admit_booking: daily booking limit reached")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("admit_booking: internal error")
)
