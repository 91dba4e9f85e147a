package request

import (
	"strings"
	"time"

	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID      uuid.UUID `json:"property_id" binding:"required"`
	CheckIn         string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut        string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	GuestCount      int       `json:"guest_count" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required"`
	Contact         string    `json:"contact" binding:"required"`
	TravelType      string    `json:"travel_type" binding:"required,oneof=friends family"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	// binding already validated the date layout
	checkIn, _ := time.Parse(time.DateOnly, r.CheckIn)
	checkOut, _ := time.Parse(time.DateOnly, r.CheckOut)
	return commands.CreateBookingParams{
		PropertyID:      r.PropertyID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestCount:      r.GuestCount,
		GuestName:       strings.TrimSpace(r.GuestName),
		Contact:         strings.TrimSpace(r.Contact),
		TravelType:      r.TravelType,
		SpecialRequests: trimPtr(r.SpecialRequests),
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityQuery struct {
	CheckIn  time.Time `form:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut time.Time `form:"check_out" binding:"required" time_format:"2006-01-02"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
