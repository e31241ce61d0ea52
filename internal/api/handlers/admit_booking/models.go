package admit_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	admitBooking "github.com/shampooches/GroomingBookingService/internal/usecase/admit_booking"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// AdmitBookingRequest HTTP request model
type AdmitBookingRequest struct {
	UserID          *int64  `json:"userId,omitempty"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress *string `json:"customerAddress,omitempty"`

	ServiceID          int64  `json:"serviceId"`
	BreedID            int64  `json:"breedId"`
	GroomerID          int64  `json:"groomerId"`
	PreferredGroomerID *int64 `json:"preferredGroomerId,omitempty"`

	DogName   string          `json:"dogName"`
	DogWeight decimal.Decimal `json:"dogWeight"`
	DogAge    string          `json:"dogAge"`

	Date      string  `json:"date"`      // "2026-03-10"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 int64  `json:"id"`
	CustomerID         int64  `json:"customerId"`
	UserID             *int64 `json:"userId,omitempty"`
	ServiceID          int64  `json:"serviceId"`
	GroomerID          int64  `json:"groomerId"`
	PreferredGroomerID *int64 `json:"preferredGroomerId,omitempty"`
	BreedID            int64  `json:"breedId"`

	DogName   string          `json:"dogName"`
	DogWeight decimal.Decimal `json:"dogWeight"`
	DogAge    string          `json:"dogAge"`

	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	PriceAtBooking decimal.Decimal `json:"priceAtBooking"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *AdmitBookingRequest) ToUseCaseRequest() (*admitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &admitBooking.Request{
		UserID:             r.UserID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		CustomerAddress:    r.CustomerAddress,
		ServiceID:          r.ServiceID,
		BreedID:            r.BreedID,
		GroomerID:          r.GroomerID,
		PreferredGroomerID: r.PreferredGroomerID,
		DogName:            r.DogName,
		DogWeight:          r.DogWeight,
		DogAge:             r.DogAge,
		Date:               date,
		StartTime:          startTime,
		Notes:              r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *admitBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 resp.ID,
		CustomerID:         resp.CustomerID,
		UserID:             resp.UserID,
		ServiceID:          resp.ServiceID,
		GroomerID:          resp.GroomerID,
		PreferredGroomerID: resp.PreferredGroomerID,
		BreedID:            resp.BreedID,
		DogName:            resp.DogName,
		DogWeight:          resp.DogWeight,
		DogAge:             resp.DogAge,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		Status:             resp.Status,
		Notes:              resp.Notes,
		PriceAtBooking:     resp.PriceAtBooking,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
