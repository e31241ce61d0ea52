package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrGroomerNotFound is returned when the groomer does not exist
	ErrGroomerNotFound = errors.New("get_available_slots: groomer not found")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
