package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type PropertySnapshot struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Name               string
	MaxGuests          int
	PricePerNightCents int64
	IsAvailable        bool
}

type BookingSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	ClientID   uuid.UUID
	Status     booking.Status
	CheckIn    time.Time
	CheckOut   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, q db.Queryer, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, q db.Queryer, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, q db.Queryer, id uuid.UUID) error
	FindSnapshotByID(ctx context.Context, q db.Queryer, id uuid.UUID) (*BookingSnapshot, error)
	// FindActiveStays returns the date ranges of every pending/confirmed
	// booking for the property. Called inside the creation transaction,
	// after the per-property lock, so the snapshot cannot go stale before
	// the insert.
	FindActiveStays(ctx context.Context, q db.Queryer, propertyID uuid.UUID) ([]booking.ActiveStay, error)
	// AcquirePropertyLock takes pg_advisory_xact_lock keyed on the property
	// id; it is released automatically at transaction end.
	AcquirePropertyLock(ctx context.Context, q db.Queryer, propertyID uuid.UUID) error
}

type PropertyRepository interface {
	Create(ctx context.Context, q db.Queryer, p *property.Property) (uuid.UUID, error)
	Update(ctx context.Context, q db.Queryer, id uuid.UUID, patch PropertyPatch) error
	FindSnapshotByID(ctx context.Context, q db.Queryer, id uuid.UUID) (*PropertySnapshot, error)
}

// PropertyPatch carries the owner-editable fields; nil means unchanged.
type PropertyPatch struct {
	Name               *string
	MaxGuests          *int
	PricePerNightCents *int64
	IsAvailable        *bool
}

func (p PropertyPatch) IsEmpty() bool {
	return p.Name == nil && p.MaxGuests == nil && p.PricePerNightCents == nil && p.IsAvailable == nil
}

type UserRepository interface {
	Create(ctx context.Context, q db.Queryer, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, q db.Queryer, id uuid.UUID) error
}
