package schedule

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrGroomerNotFound is returned when the groomer does not exist
	ErrGroomerNotFound = errors.New("schedule.service: groomer not found")

	// ErrSlotNotFound is returned when the slot does not exist
	ErrSlotNotFound = errors.New("schedule.service: time slot not found")

	// ErrSlotExists is returned when an identical slot already exists
	ErrSlotExists = errors.New("schedule.service: time slot already exists")

	// ErrSlotHasBooking is returned when a slot cannot be removed because a
	// blocking appointment occupies it
	ErrSlotHasBooking = errors.New("schedule.service: time slot has a booked appointment")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("schedule.service: internal error")
)
