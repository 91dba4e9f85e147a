//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/booking"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	ClientID        uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	Status          string
	TotalPriceCents int64
	GuestName       string
	Contact         string
	TravelType      string
	SpecialRequests *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              uuid.New(),
		PropertyID:      uuid.New(),
		ClientID:        uuid.New(),
		CheckIn:         time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		GuestCount:      2,
		Status:          "pending",
		TotalPriceCents: 36000,
		GuestName:       "Alice Tanaka",
		Contact:         "alice@example.com",
		TravelType:      "friends",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		PropertyID:      b.PropertyID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		GuestCount:      b.GuestCount,
		GuestName:       b.GuestName,
		Contact:         b.Contact,
		TravelType:      b.TravelType,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID:      b.PropertyID,
		CheckIn:         b.CheckIn.Format(time.DateOnly),
		CheckOut:        b.CheckOut.Format(time.DateOnly),
		GuestCount:      b.GuestCount,
		GuestName:       b.GuestName,
		Contact:         b.Contact,
		TravelType:      b.TravelType,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now().UTC()
	return &queries.BookingView{
		ID:              b.ID,
		PropertyID:      b.PropertyID,
		ClientID:        b.ClientID,
		ClientEmail:     b.Contact,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		GuestCount:      int32(b.GuestCount),
		Status:          b.Status,
		TotalPriceCents: b.TotalPriceCents,
		GuestName:       b.GuestName,
		Contact:         b.Contact,
		TravelType:      b.TravelType,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		ClientID:   b.ClientID,
		Status:     booking.Status(b.Status),
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
}

func (b *BookingBuilder) BuildActiveStay() booking.ActiveStay {
	return booking.ActiveStay{
		ID:    b.ID,
		Range: booking.UncheckedStayRange(b.CheckIn, b.CheckOut),
	}
}
