package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyName    string    `json:"propertyName"`
	ClientID        uuid.UUID `json:"clientId"`
	ClientEmail     string    `json:"clientEmail"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	GuestCount      int32     `json:"guestCount"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	GuestName       string    `json:"guestName"`
	Contact         string    `json:"contact"`
	TravelType      string    `json:"travelType"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyName    string    `json:"propertyName"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	GuestCount      int32     `json:"guestCount"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ConflictingBookingResponse struct {
	ID       uuid.UUID `json:"id"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Status   string    `json:"status"`
}

type AvailabilityResponse struct {
	IsAvailable         bool                         `json:"isAvailable"`
	ConflictingBookings []ConflictingBookingResponse `json:"conflictingBookings"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromAvailabilityResult(result *queries.AvailabilityResult) *AvailabilityResponse {
	resp := AvailabilityResponse{
		IsAvailable:         result.IsAvailable,
		ConflictingBookings: make([]ConflictingBookingResponse, len(result.ConflictingBookings)),
	}
	_ = copier.Copy(&resp.ConflictingBookings, &result.ConflictingBookings)
	return &resp
}
