package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"ownerId"`
	Name               string    `json:"name"`
	MaxGuests          int32     `json:"maxGuests"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	IsAvailable        bool      `json:"isAvailable"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromPropertyView(view *queries.PropertyView) *PropertyResponse {
	var resp PropertyResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPropertyViews(views []*queries.PropertyView) []*PropertyResponse {
	result := make([]*PropertyResponse, len(views))
	for i, view := range views {
		result[i] = FromPropertyView(view)
	}
	return result
}
