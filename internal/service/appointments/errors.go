package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrInvalidStatus is returned when the requested status is not a known one
	ErrInvalidStatus = errors.New("appointments.service: invalid appointment status")

	// ErrInvalidTransition is returned when the status change is not allowed
	// from the appointment's current status
	ErrInvalidTransition = errors.New("appointments.service: invalid status transition")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("appointments.service: internal error")
)
