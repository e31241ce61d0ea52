package create_time_slots

import (
	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/internal/service/schedule"
)

// SlotInput is one requested opening
type SlotInput struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// CreateTimeSlotsRequest HTTP request model
type CreateTimeSlotsRequest struct {
	Date  string      `json:"date"` // "2026-03-12"
	Slots []SlotInput `json:"slots"`
}

// SlotResponse is one created slot
type SlotResponse struct {
	ID        int64  `json:"id"`
	GroomerID int64  `json:"groomerId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// CreateTimeSlotsResponse HTTP response model
type CreateTimeSlotsResponse struct {
	Created []SlotResponse `json:"created"`
	Skipped int            `json:"skipped"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *CreateTimeSlotsRequest) ToServiceRequest(groomerID int64) schedule.CreateSlotsRequest {
	slots := make([]schedule.SlotInput, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, schedule.SlotInput{StartTime: s.StartTime, EndTime: s.EndTime})
	}

	return schedule.CreateSlotsRequest{
		GroomerID: groomerID,
		Date:      r.Date,
		Slots:     slots,
	}
}

// FromServiceResponse converts the service response into the HTTP response
func FromServiceResponse(resp *schedule.CreateSlotsResponse) *CreateTimeSlotsResponse {
	out := &CreateTimeSlotsResponse{
		Created: make([]SlotResponse, 0, len(resp.Created)),
		Skipped: resp.Skipped,
	}

	for _, slot := range resp.Created {
		out.Created = append(out.Created, SlotResponse{
			ID:        slot.ID,
			GroomerID: slot.GroomerID,
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			IsActive:  slot.IsActive,
		})
	}

	return out
}
