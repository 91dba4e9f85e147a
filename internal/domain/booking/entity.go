package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPropertyUnavailable = errors.New("property is not accepting bookings")
	ErrGuestCountExceeded  = errors.New("guest count exceeds property capacity")
	ErrInvalidGuestCount   = errors.New("guest count must be positive")
	ErrCheckInInPast       = errors.New("check-in date is in the past")
	ErrInvalidStayRange    = errors.New("check-out must be after check-in")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidTravelType   = errors.New("invalid travel type")
	ErrEmptyGuestName      = errors.New("guest name cannot be empty")
	ErrEmptyContact        = errors.New("contact cannot be empty")
)

type GuestDetails struct {
	Name            string
	Contact         string
	TravelType      TravelType
	SpecialRequests Note
}

type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	clientID   uuid.UUID
	stay       StayRange
	guestCount int
	status     Status
	totalPrice Money
	details    GuestDetails
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructBooking(
	id, propertyID, clientID uuid.UUID,
	stay StayRange,
	guestCount int,
	status Status,
	totalPrice Money,
	details GuestDetails,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		clientID:   clientID,
		stay:       stay,
		guestCount: guestCount,
		status:     status,
		totalPrice: totalPrice,
		details:    details,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) BelongsTo(clientID uuid.UUID) bool {
	return b.clientID == clientID
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) PropertyID() uuid.UUID  { return b.propertyID }
func (b *Booking) ClientID() uuid.UUID    { return b.clientID }
func (b *Booking) Stay() StayRange        { return b.stay }
func (b *Booking) GuestCount() int        { return b.guestCount }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) TotalPrice() Money      { return b.totalPrice }
func (b *Booking) Details() GuestDetails  { return b.details }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
