//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, checkIn, checkOut time.Time) booking.StayRange {
	t.Helper()
	r, err := booking.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

func TestNormalizeDate(t *testing.T) {
	t.Run("strips time of day", func(t *testing.T) {
		instant := time.Date(2026, 9, 10, 15, 42, 7, 123, time.UTC)
		assert.Equal(t, day(2026, 9, 10), booking.NormalizeDate(instant))
	})

	t.Run("converts zone before truncating", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*3600)
		// 2026-09-10 02:00 JST is 2026-09-09 17:00 UTC
		instant := time.Date(2026, 9, 10, 2, 0, 0, 0, tokyo)
		assert.Equal(t, day(2026, 9, 9), booking.NormalizeDate(instant))
	})
}

func TestNewStayRange(t *testing.T) {
	t.Run("rejects checkout before checkin", func(t *testing.T) {
		_, err := booking.NewStayRange(day(2026, 9, 13), day(2026, 9, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("rejects zero-night stay", func(t *testing.T) {
		_, err := booking.NewStayRange(day(2026, 9, 10), day(2026, 9, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("nights counts calendar days", func(t *testing.T) {
		r := stay(t, day(2026, 9, 10), day(2026, 9, 13))
		assert.Equal(t, 3, r.Nights())
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    booking.StayRange
		overlap bool
	}{
		{
			name:    "partial overlap",
			a:       booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 15)),
			b:       booking.UncheckedStayRange(day(2026, 9, 13), day(2026, 9, 18)),
			overlap: true,
		},
		{
			name:    "containment",
			a:       booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 20)),
			b:       booking.UncheckedStayRange(day(2026, 9, 12), day(2026, 9, 14)),
			overlap: true,
		},
		{
			name:    "identical ranges",
			a:       booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 13)),
			b:       booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 13)),
			overlap: true,
		},
		{
			name:    "back to back does not overlap",
			a:       booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 13)),
			b:       booking.UncheckedStayRange(day(2026, 9, 13), day(2026, 9, 16)),
			overlap: false,
		},
		{
			name:    "disjoint with gap",
			a:       booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 12)),
			b:       booking.UncheckedStayRange(day(2026, 9, 20), day(2026, 9, 22)),
			overlap: false,
		},
		{
			name:    "single shared interior night",
			a:       booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 13)),
			b:       booking.UncheckedStayRange(day(2026, 9, 12), day(2026, 9, 14)),
			overlap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.overlap, tt.b.Overlaps(tt.a))
		})
	}
}

func TestStayRangeStartsBefore(t *testing.T) {
	r := booking.UncheckedStayRange(day(2026, 9, 10), day(2026, 9, 13))
	assert.True(t, r.StartsBefore(day(2026, 9, 11)))
	assert.False(t, r.StartsBefore(day(2026, 9, 10)))
	assert.False(t, r.StartsBefore(day(2026, 9, 9)))
}

func TestMoney(t *testing.T) {
	m := booking.NewMoney(36000)
	assert.Equal(t, int64(36000), m.Cents())
	assert.InDelta(t, 360.0, m.Dollars(), 0.001)
}
