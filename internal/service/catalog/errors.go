package catalog

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("catalog.service: invalid input data")

	// ErrPartialWeightPricing is returned when a breed write carries some but
	// not all of the surcharge parameters
	ErrPartialWeightPricing = errors.New("catalog.service: start weight, weight increment and increment price must be set together")

	// ErrBreedNotFound is returned when the breed does not exist
	ErrBreedNotFound = errors.New("catalog.service: breed not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("catalog.service: service not found")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("catalog.service: internal error")
)
