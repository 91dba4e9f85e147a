//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Name               string
	MaxGuests          int
	PricePerNightCents int64
	IsAvailable        bool
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:                 uuid.New(),
		OwnerID:            uuid.New(),
		Name:               "Seaside Cottage",
		MaxGuests:          4,
		PricePerNightCents: 12000,
		IsAvailable:        true,
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) BuildDomain() *property.Property {
	now := time.Now().UTC()
	return property.ReconstructProperty(
		b.ID, b.OwnerID, b.Name,
		b.MaxGuests, b.PricePerNightCents, b.IsAvailable,
		now, now,
	)
}

func (b *PropertyBuilder) BuildSnapshot() *commands.PropertySnapshot {
	return &commands.PropertySnapshot{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		Name:               b.Name,
		MaxGuests:          b.MaxGuests,
		PricePerNightCents: b.PricePerNightCents,
		IsAvailable:        b.IsAvailable,
	}
}

func (b *PropertyBuilder) BuildView() *queries.PropertyView {
	now := time.Now().UTC()
	return &queries.PropertyView{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		Name:               b.Name,
		MaxGuests:          int32(b.MaxGuests),
		PricePerNightCents: b.PricePerNightCents,
		IsAvailable:        b.IsAvailable,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
