package notifier

import (
	"fmt"

	"github.com/shampooches/GroomingBookingService/internal/domain"
)

// Logger is the leveled printf logger used across the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Notifier composes customer notifications for appointment status changes.
// Delivery is log-only: the composed message is written to the service log
// where an external mailer picks it up. A missing template or unknown
// transition is logged and dropped, never propagated to the caller.
type Notifier struct {
	logger Logger
}

// New creates a notifier
func New(logger Logger) *Notifier {
	return &Notifier{logger: logger}
}

// NotifyStatusChange routes a committed status change to the matching
// notification. The change carries the explicit previous/new pair, so
// routing never has to guess what the status used to be.
func (n *Notifier) NotifyStatusChange(appt *domain.Appointment, change domain.StatusChange) {
	msg, ok := n.compose(appt, change)
	if !ok {
		n.logger.Info("Notifier: no notification for transition %s -> %s (appointment id=%d)",
			change.Previous, change.New, change.AppointmentID)
		return
	}

	n.logger.Info("Notifier: appointment id=%d: %s", change.AppointmentID, msg)
}

func (n *Notifier) compose(appt *domain.Appointment, change domain.StatusChange) (string, bool) {
	date := appt.Date.Format(domain.DateFormat)

	switch change.New {
	case domain.StatusConfirmed:
		return fmt.Sprintf("Your appointment for %s on %s at %s is confirmed.",
			appt.DogName, date, appt.StartTime), true
	case domain.StatusCancelled:
		return fmt.Sprintf("Your appointment for %s on %s at %s has been cancelled.",
			appt.DogName, date, appt.StartTime), true
	case domain.StatusCompleted:
		return fmt.Sprintf("Thanks for visiting! %s's grooming on %s is complete.",
			appt.DogName, date), true
	default:
		return "", false
	}
}
