package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	PropertyOwnerID uuid.UUID `json:"-"`
	ClientID        uuid.UUID `json:"client_id"`
	ClientEmail     string    `json:"client_email"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	GuestCount      int32     `json:"guest_count"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	GuestName       string    `json:"guest_name"`
	Contact         string    `json:"contact"`
	TravelType      string    `json:"travel_type"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	GuestCount      int32     `json:"guest_count"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type PropertyView struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"owner_id"`
	Name               string    `json:"name"`
	MaxGuests          int32     `json:"max_guests"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	IsAvailable        bool      `json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ConflictingBooking is the caller-diagnostic slice of an active booking
// that blocks a requested range.
type ConflictingBooking struct {
	ID       uuid.UUID `json:"id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Status   string    `json:"status"`
}

type AvailabilityResult struct {
	IsAvailable         bool                 `json:"is_available"`
	ConflictingBookings []ConflictingBooking `json:"conflicting_bookings"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
