package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a grooming appointment in the system
type Appointment struct {
	ID                 int64
	CustomerID         int64
	UserID             *int64 // set when the customer has a linked account
	ServiceID          int64
	GroomerID          int64
	PreferredGroomerID *int64
	BreedID            int64

	DogName   string
	DogWeight decimal.Decimal // pounds
	DogAge    string

	Date      time.Time
	StartTime types.TimeString
	Status    AppointmentStatus
	Notes     *string

	// PriceAtBooking is the price snapshot taken at admission time.
	// It is never recomputed, even if catalog prices change later.
	PriceAtBooking decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment occupies its time slot
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed || a.Status == StatusCompleted
}

// IsActive returns true if the appointment is still upcoming
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change is allowed.
// Legal transitions: pending -> confirmed | cancelled,
// confirmed -> completed | cancelled. Completed and cancelled are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// StatusChange describes a completed status transition. It is handed to the
// notifier so notification routing never has to re-read the previous status.
type StatusChange struct {
	AppointmentID int64
	Previous      AppointmentStatus
	New           AppointmentStatus
}
