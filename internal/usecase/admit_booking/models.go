package admit_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// Request is an admission request. Either UserID (linked account) or
// CustomerEmail (guest) identifies the customer.
type Request struct {
	UserID          *int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress *string

	ServiceID          int64
	BreedID            int64
	GroomerID          int64
	PreferredGroomerID *int64

	DogName   string
	DogWeight decimal.Decimal
	DogAge    string

	Date      time.Time
	StartTime types.TimeString
	Notes     *string
}

// Response is the admitted appointment
type Response struct {
	ID                 int64
	CustomerID         int64
	UserID             *int64
	ServiceID          int64
	GroomerID          int64
	PreferredGroomerID *int64
	BreedID            int64

	DogName   string
	DogWeight decimal.Decimal
	DogAge    string

	Date      time.Time
	StartTime types.TimeString
	Status    string
	Notes     *string

	PriceAtBooking decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
