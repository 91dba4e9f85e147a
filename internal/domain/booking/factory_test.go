//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProperty(maxGuests int, priceCents int64, available bool) *property.Property {
	now := time.Now().UTC()
	return property.ReconstructProperty(
		uuid.New(), uuid.New(), "Mountain Lodge",
		maxGuests, priceCents, available,
		now, now,
	)
}

func testDetails() booking.GuestDetails {
	return booking.GuestDetails{
		Name:       "Alice Tanaka",
		Contact:    "alice@example.com",
		TravelType: booking.TravelFriends,
	}
}

func TestFactoryCreateBooking(t *testing.T) {
	// "today" is fixed at 2026-09-01
	mockClock := clock.NewMockClock(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))
	factory := booking.NewFactory(mockClock)

	t.Run("creates pending booking with computed total", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		b, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 10), day(2026, 9, 13), 2, testDetails())
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, prop.ID(), b.PropertyID())
		assert.Equal(t, 3, b.Stay().Nights())
		assert.Equal(t, int64(36000), b.TotalPrice().Cents())
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 1), day(2026, 9, 3), 2, testDetails())
		assert.NoError(t, err)
	})

	t.Run("rejects unavailable property", func(t *testing.T) {
		prop := testProperty(4, 12000, false)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 10), day(2026, 9, 13), 2, testDetails())
		assert.ErrorIs(t, err, booking.ErrPropertyUnavailable)
	})

	t.Run("rejects guest count above capacity", func(t *testing.T) {
		prop := testProperty(2, 12000, true)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 10), day(2026, 9, 13), 3, testDetails())
		assert.ErrorIs(t, err, booking.ErrGuestCountExceeded)
	})

	t.Run("rejects non-positive guest count", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 10), day(2026, 9, 13), 0, testDetails())
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("rejects past check-in", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 8, 20), day(2026, 8, 23), 2, testDetails())
		assert.ErrorIs(t, err, booking.ErrCheckInInPast)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 13), day(2026, 9, 10), 2, testDetails())
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("rejects empty guest name", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		details := testDetails()
		details.Name = "   "
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 10), day(2026, 9, 13), 2, details)
		assert.ErrorIs(t, err, booking.ErrEmptyGuestName)
	})

	t.Run("rejects unknown travel type", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		details := testDetails()
		details.TravelType = booking.TravelType("business")
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 10), day(2026, 9, 13), 2, details)
		assert.ErrorIs(t, err, booking.ErrInvalidTravelType)
	})
}

// A request breaking several rules at once reports the first failing check,
// in the documented order.
func TestFactoryRejectionOrdering(t *testing.T) {
	mockClock := clock.NewMockClock(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))
	factory := booking.NewFactory(mockClock)

	t.Run("unavailable property wins over guest count", func(t *testing.T) {
		prop := testProperty(2, 12000, false)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 9, 10), day(2026, 9, 13), 10, testDetails())
		assert.ErrorIs(t, err, booking.ErrPropertyUnavailable)
	})

	t.Run("guest count wins over past check-in", func(t *testing.T) {
		prop := testProperty(2, 12000, true)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 8, 20), day(2026, 8, 23), 10, testDetails())
		assert.ErrorIs(t, err, booking.ErrGuestCountExceeded)
	})

	t.Run("past check-in wins over inverted range", func(t *testing.T) {
		prop := testProperty(4, 12000, true)
		_, err := factory.CreateBooking(prop, uuid.New(), day(2026, 8, 23), day(2026, 8, 20), 2, testDetails())
		assert.ErrorIs(t, err, booking.ErrCheckInInPast)
	})
}
