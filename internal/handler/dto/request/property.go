package request

import (
	"stayhub/internal/usecase/commands"
)

type CreatePropertyRequest struct {
	Name               string `json:"name" binding:"required"`
	MaxGuests          int    `json:"max_guests" binding:"required,gt=0"`
	PricePerNightCents int64  `json:"price_per_night_cents" binding:"gte=0"`
}

func (r CreatePropertyRequest) ToParams() commands.CreatePropertyParams {
	return commands.CreatePropertyParams{
		Name:               r.Name,
		MaxGuests:          r.MaxGuests,
		PricePerNightCents: r.PricePerNightCents,
	}
}

type UpdatePropertyRequest struct {
	Name               *string `json:"name,omitempty"`
	MaxGuests          *int    `json:"max_guests,omitempty"`
	PricePerNightCents *int64  `json:"price_per_night_cents,omitempty"`
	IsAvailable        *bool   `json:"is_available,omitempty"`
}

func (r UpdatePropertyRequest) ToPatch() commands.PropertyPatch {
	return commands.PropertyPatch{
		Name:               r.Name,
		MaxGuests:          r.MaxGuests,
		PricePerNightCents: r.PricePerNightCents,
		IsAvailable:        r.IsAvailable,
	}
}
