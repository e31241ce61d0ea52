package admit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

// validateRequest validates the admission request fields
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	// Guests are identified by email
	if req.UserID == nil && strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required for guest bookings", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DogName) == "" {
		return fmt.Errorf("%w: dog name is required", ErrInvalidInput)
	}

	if len(req.DogName) > domain.MaxDogNameLength {
		return fmt.Errorf("%w: dog name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DogAge) == "" {
		return fmt.Errorf("%w: dog age is required", ErrInvalidInput)
	}

	if !req.DogWeight.IsPositive() {
		return fmt.Errorf("%w: dog weight must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.BreedID <= 0 {
		return fmt.Errorf("%w: breedID must be positive", ErrInvalidInput)
	}

	if req.GroomerID <= 0 {
		return fmt.Errorf("%w: groomerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// isDateInPast compares calendar days only: booking for later today is fine
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
