package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*BookingListItem, error)
	ListByProperty(ctx context.Context, actor uuid.UUID, propertyID uuid.UUID) ([]*BookingListItem, error)
	CheckAvailability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*BookingListItem, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*BookingListItem, error)
	FindActiveStays(ctx context.Context, propertyID uuid.UUID) ([]ConflictingBooking, error)
}

type bookingQueriesImpl struct {
	readStore         BookingReadStore
	propertyReadStore PropertyReadStore
}

func NewBookingQueries(readStore BookingReadStore, propertyReadStore PropertyReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore:         readStore,
		propertyReadStore: propertyReadStore,
	}
}

// GetByID is visible to the booking's client and the property's owner only.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.ClientID != actor && view.PropertyOwnerID != actor {
		return nil, ErrBookingAccess
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*BookingListItem, error) {
	return q.readStore.FindByClientID(ctx, clientID)
}

func (q *bookingQueriesImpl) ListByProperty(ctx context.Context, actor uuid.UUID, propertyID uuid.UUID) ([]*BookingListItem, error) {
	prop, err := q.propertyReadStore.FindByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if prop.OwnerID != actor {
		return nil, ErrPropertyAccess
	}

	return q.readStore.FindByPropertyID(ctx, propertyID)
}

// CheckAvailability answers "are these dates free" for anyone, without
// guest-count or past-date checks: those belong to booking creation, not to
// a calendar lookup. The conflicting bookings are returned so callers can
// explain which stays block the range.
func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if _, err := q.propertyReadStore.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	stays, err := q.readStore.FindActiveStays(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	candidate := booking.UncheckedStayRange(checkIn, checkOut)

	actives := make([]booking.ActiveStay, len(stays))
	byID := make(map[uuid.UUID]ConflictingBooking, len(stays))
	for i, stay := range stays {
		actives[i] = booking.ActiveStay{
			ID:    stay.ID,
			Range: booking.UncheckedStayRange(stay.CheckIn, stay.CheckOut),
		}
		byID[stay.ID] = stay
	}

	conflicts := make([]ConflictingBooking, 0)
	for _, id := range booking.FindConflicts(candidate, actives) {
		conflicts = append(conflicts, byID[id])
	}

	return &AvailabilityResult{
		IsAvailable:         len(conflicts) == 0,
		ConflictingBookings: conflicts,
	}, nil
}
