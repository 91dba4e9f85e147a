package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("property name cannot be empty")
	ErrInvalidMaxGuests = errors.New("max guests must be positive")
	ErrNegativePrice    = errors.New("price per night cannot be negative")
)

// Property is read-only from the booking engine's point of view: the engine
// consults maxGuests / pricePerNight / isAvailable but never mutates them.
type Property struct {
	id                 uuid.UUID
	ownerID            uuid.UUID
	name               string
	maxGuests          int
	pricePerNightCents int64
	isAvailable        bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewProperty(ownerID uuid.UUID, name string, maxGuests int, pricePerNightCents int64) (*Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if maxGuests <= 0 {
		return nil, ErrInvalidMaxGuests
	}
	if pricePerNightCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Property{
		id:                 uuid.New(),
		ownerID:            ownerID,
		name:               name,
		maxGuests:          maxGuests,
		pricePerNightCents: pricePerNightCents,
		isAvailable:        true,
	}, nil
}

func ReconstructProperty(
	id, ownerID uuid.UUID,
	name string,
	maxGuests int,
	pricePerNightCents int64,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:                 id,
		ownerID:            ownerID,
		name:               name,
		maxGuests:          maxGuests,
		pricePerNightCents: pricePerNightCents,
		isAvailable:        isAvailable,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.ownerID == userID
}

func (p *Property) FitsGuests(count int) bool {
	return count <= p.maxGuests
}

func (p *Property) ID() uuid.UUID              { return p.id }
func (p *Property) OwnerID() uuid.UUID         { return p.ownerID }
func (p *Property) Name() string               { return p.name }
func (p *Property) MaxGuests() int             { return p.maxGuests }
func (p *Property) PricePerNightCents() int64  { return p.pricePerNightCents }
func (p *Property) IsAvailable() bool          { return p.isAvailable }
func (p *Property) CreatedAt() time.Time       { return p.createdAt }
func (p *Property) UpdatedAt() time.Time       { return p.updatedAt }
