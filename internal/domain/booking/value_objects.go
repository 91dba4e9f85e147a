package booking

import (
	"fmt"
	"strings"
	"time"
)

// StayRange is a half-open calendar-date interval [checkIn, checkOut).
// The checkout day itself is excluded, which permits same-day turnover:
// one guest checks out the morning another checks in.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NormalizeDate truncates t to its calendar date at midnight UTC, discarding
// any time-of-day or timezone component carried by user-submitted values.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	r := StayRange{
		checkIn:  NormalizeDate(checkIn),
		checkOut: NormalizeDate(checkOut),
	}
	if !r.checkOut.After(r.checkIn) {
		return StayRange{}, ErrInvalidStayRange
	}
	return r, nil
}

// UncheckedStayRange normalizes without validating order. The booking factory
// uses it so that range ordering is reported in its documented position,
// after the availability and guest-count checks.
func UncheckedStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{
		checkIn:  NormalizeDate(checkIn),
		checkOut: NormalizeDate(checkOut),
	}
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

func (r StayRange) IsOrdered() bool {
	return r.checkOut.After(r.checkIn)
}

func (r StayRange) StartsBefore(day time.Time) bool {
	return r.checkIn.Before(NormalizeDate(day))
}

// Overlaps is the interval-intersection test for half-open ranges: two stays
// collide iff each starts before the other ends. Back-to-back stays sharing a
// turnover day do not overlap because both comparisons are strict.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && r.checkOut.After(other.checkIn)
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn) / (24 * time.Hour))
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.DateOnly), r.checkOut.Format(time.DateOnly))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
