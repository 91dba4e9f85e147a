package booking

import (
	"strings"
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{Clock: c}
}

// CreateBooking runs the eligibility checks in a fixed order and
// short-circuits on the first failure, so a request violating several rules
// always reports the same single reason:
//
//	property available → guest count → check-in not past → range ordered
//
// Overlap against existing active stays is checked by the caller after this
// succeeds (it needs the current booking list) and before persisting.
func (f *Factory) CreateBooking(
	prop *property.Property,
	clientID uuid.UUID,
	checkIn, checkOut time.Time,
	guestCount int,
	details GuestDetails,
) (*Booking, error) {
	if prop == nil || !prop.IsAvailable() {
		return nil, ErrPropertyUnavailable
	}

	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if !prop.FitsGuests(guestCount) {
		return nil, ErrGuestCountExceeded
	}

	stay := UncheckedStayRange(checkIn, checkOut)
	if stay.StartsBefore(clock.Today(f.Clock)) {
		return nil, ErrCheckInInPast
	}
	if !stay.IsOrdered() {
		return nil, ErrInvalidStayRange
	}

	if err := validateDetails(&details); err != nil {
		return nil, err
	}

	// Total price is fixed at creation and never re-derived from the
	// property's current rate.
	totalPrice := NewMoney(int64(stay.Nights()) * prop.PricePerNightCents())

	return &Booking{
		id:         uuid.New(),
		propertyID: prop.ID(),
		clientID:   clientID,
		stay:       stay,
		guestCount: guestCount,
		status:     StatusPending,
		totalPrice: totalPrice,
		details:    details,
	}, nil
}

func validateDetails(details *GuestDetails) error {
	details.Name = strings.TrimSpace(details.Name)
	if details.Name == "" {
		return ErrEmptyGuestName
	}
	details.Contact = strings.TrimSpace(details.Contact)
	if details.Contact == "" {
		return ErrEmptyContact
	}
	if !details.TravelType.IsValid() {
		return ErrInvalidTravelType
	}
	return nil
}
