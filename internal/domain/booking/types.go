package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status blocks other bookings
// over the same dates. Cancelled and completed stays release their dates.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ActiveStatuses is the filter applied when fetching bookings that
// participate in overlap checks.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

type TravelType string

const (
	TravelFriends TravelType = "friends"
	TravelFamily  TravelType = "family"
)

func (t TravelType) String() string {
	return string(t)
}

func (t TravelType) IsValid() bool {
	switch t {
	case TravelFriends, TravelFamily:
		return true
	default:
		return false
	}
}

func NewTravelType(s string) (TravelType, error) {
	t := TravelType(s)
	if !t.IsValid() {
		return "", ErrInvalidTravelType
	}
	return t, nil
}
