package get_available_slots

import (
	"github.com/shampooches/GroomingBookingService/internal/domain"
	getAvailableSlots "github.com/shampooches/GroomingBookingService/internal/usecase/get_available_slots"
)

// SlotResponse is one bookable opening
type SlotResponse struct {
	Time    string `json:"time"`    // "15:00"
	Display string `json:"display"` // "3:00 PM"

	HasSameCustomerBooking bool `json:"hasSameCustomerBooking,omitempty"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	GroomerID int64          `json:"groomerId"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		GroomerID: resp.GroomerID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Time:                   s.Time.String(),
			Display:                s.Display,
			HasSameCustomerBooking: s.HasSameCustomerBooking,
		})
	}

	return out
}
