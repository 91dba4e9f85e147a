package booking

import "github.com/google/uuid"

// ActiveStay is the slice of an existing booking that matters for overlap
// checks: its identity and its date range. Only pending/confirmed bookings
// are ever represented as ActiveStays.
type ActiveStay struct {
	ID    uuid.UUID
	Range StayRange
}

// FindConflicts returns the ids of every existing active stay that overlaps
// the candidate range. Booking creation and the availability query both go
// through this single predicate application.
func FindConflicts(candidate StayRange, existing []ActiveStay) []uuid.UUID {
	var conflicts []uuid.UUID
	for _, stay := range existing {
		if candidate.Overlaps(stay.Range) {
			conflicts = append(conflicts, stay.ID)
		}
	}
	return conflicts
}
