package get_available_slots

import "fmt"

// validateRequest validates the slot listing request
func validateRequest(req *Request) error {
	if req.GroomerID <= 0 {
		return fmt.Errorf("%w: groomerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	return nil
}
