package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is not a known status
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// UpdateStatusRequest asks to move an appointment to a new status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusChangeResponse reports a completed transition
type StatusChangeResponse struct {
	AppointmentID  int64  `json:"appointmentId"`
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
}

// AppointmentResponse is the appointment DTO
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

	Date      string  `json:"date"`      // "2026-03-10"
	StartTime string  `json:"startTime"` // "10:00"
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	PriceAtBooking decimal.Decimal `json:"priceAtBooking"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse is a list of appointment DTOs
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment converts a domain appointment into a DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		CustomerID:         a.CustomerID,
		UserID:             a.UserID,
		ServiceID:          a.ServiceID,
		GroomerID:          a.GroomerID,
		PreferredGroomerID: a.PreferredGroomerID,
		BreedID:            a.BreedID,
		DogName:            a.DogName,
		DogWeight:          a.DogWeight,
		DogAge:             a.DogAge,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		Status:             string(a.Status),
		Notes:              a.Notes,
		PriceAtBooking:     a.PriceAtBooking,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a slice of domain appointments
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if dto := FromDomainAppointment(a); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}

// ToDomainStatus validates and converts a status string
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return s, nil
	}

	return "", ErrInvalidStatus
}
