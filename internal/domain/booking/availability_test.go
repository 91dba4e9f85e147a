//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func activeStay(checkIn, checkOut time.Time) booking.ActiveStay {
	return booking.ActiveStay{
		ID:    uuid.New(),
		Range: booking.UncheckedStayRange(checkIn, checkOut),
	}
}

func TestFindConflicts(t *testing.T) {
	existing := []booking.ActiveStay{
		activeStay(day(2026, 9, 1), day(2026, 9, 5)),
		activeStay(day(2026, 9, 10), day(2026, 9, 15)),
		activeStay(day(2026, 9, 20), day(2026, 9, 25)),
	}

	t.Run("free gap has no conflicts", func(t *testing.T) {
		candidate := booking.UncheckedStayRange(day(2026, 9, 5), day(2026, 9, 10))
		assert.Empty(t, booking.FindConflicts(candidate, existing))
	})

	t.Run("single overlap reports that stay only", func(t *testing.T) {
		candidate := booking.UncheckedStayRange(day(2026, 9, 14), day(2026, 9, 18))
		conflicts := booking.FindConflicts(candidate, existing)
		assert.Equal(t, []uuid.UUID{existing[1].ID}, conflicts)
	})

	t.Run("spanning range reports every overlapped stay", func(t *testing.T) {
		candidate := booking.UncheckedStayRange(day(2026, 9, 4), day(2026, 9, 21))
		conflicts := booking.FindConflicts(candidate, existing)
		assert.Len(t, conflicts, 3)
	})

	t.Run("no existing stays", func(t *testing.T) {
		candidate := booking.UncheckedStayRange(day(2026, 9, 1), day(2026, 9, 5))
		assert.Empty(t, booking.FindConflicts(candidate, nil))
	})
}
