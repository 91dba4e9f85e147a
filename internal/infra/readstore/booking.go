package readstore

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.Queryer
}

func NewBookingReadStore(q db.Queryer) *BookingReadStore {
	return &BookingReadStore{db: q}
}

const findBookingByIDSQL = `
SELECT b.id, b.property_id, p.name AS property_name, p.owner_id,
       b.client_id, u.email AS client_email,
       b.check_in, b.check_out, b.guest_count, b.status, b.total_price_cents,
       b.guest_name, b.contact, b.travel_type, b.special_requests,
       b.created_at, b.updated_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
JOIN users u ON u.id = b.client_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view            queries.BookingView
		bookingID       pgtype.UUID
		propertyID      pgtype.UUID
		ownerID         pgtype.UUID
		clientID        pgtype.UUID
		checkIn         pgtype.Date
		checkOut        pgtype.Date
		specialRequests pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &propertyID, &view.PropertyName, &ownerID,
		&clientID, &view.ClientEmail,
		&checkIn, &checkOut, &view.GuestCount, &view.Status, &view.TotalPriceCents,
		&view.GuestName, &view.Contact, &view.TravelType, &specialRequests,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.ID = *pgconv.UUIDPtrFromPgtype(bookingID)
	view.PropertyID = *pgconv.UUIDPtrFromPgtype(propertyID)
	view.PropertyOwnerID = *pgconv.UUIDPtrFromPgtype(ownerID)
	view.ClientID = *pgconv.UUIDPtrFromPgtype(clientID)
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const findBookingsByClientSQL = `
SELECT b.id, b.property_id, p.name AS property_name,
       b.check_in, b.check_out, b.guest_count, b.status, b.total_price_cents,
       b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.client_id = $1
ORDER BY b.created_at DESC, b.id DESC`

func (r *BookingReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByClientSQL, pgconv.UUIDToPgtype(clientID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by client", err)
	}
	defer rows.Close()
	return scanBookingList(rows)
}

const findBookingsByPropertySQL = `
SELECT b.id, b.property_id, p.name AS property_name,
       b.check_in, b.check_out, b.guest_count, b.status, b.total_price_cents,
       b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.property_id = $1
ORDER BY b.check_in, b.id`

func (r *BookingReadStore) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByPropertySQL, pgconv.UUIDToPgtype(propertyID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by property", err)
	}
	defer rows.Close()
	return scanBookingList(rows)
}

type bookingRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBookingList(rows bookingRows) ([]*queries.BookingListItem, error) {
	result := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item       queries.BookingListItem
			bookingID  pgtype.UUID
			propertyID pgtype.UUID
			checkIn    pgtype.Date
			checkOut   pgtype.Date
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&bookingID, &propertyID, &item.PropertyName,
			&checkIn, &checkOut, &item.GuestCount, &item.Status, &item.TotalPriceCents,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.ID = *pgconv.UUIDPtrFromPgtype(bookingID)
		item.PropertyID = *pgconv.UUIDPtrFromPgtype(propertyID)
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

const findActiveStaysViewSQL = `
SELECT id, check_in, check_out, status
FROM bookings
WHERE property_id = $1 AND status IN ('pending', 'confirmed')
ORDER BY check_in`

func (r *BookingReadStore) FindActiveStays(ctx context.Context, propertyID uuid.UUID) ([]queries.ConflictingBooking, error) {
	rows, err := r.db.Query(ctx, findActiveStaysViewSQL, pgconv.UUIDToPgtype(propertyID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active stays", err)
	}
	defer rows.Close()

	result := make([]queries.ConflictingBooking, 0)
	for rows.Next() {
		var (
			item      queries.ConflictingBooking
			bookingID pgtype.UUID
			checkIn   pgtype.Date
			checkOut  pgtype.Date
		)
		if err := rows.Scan(&bookingID, &checkIn, &checkOut, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active stay", err)
		}
		item.ID = *pgconv.UUIDPtrFromPgtype(bookingID)
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active stays", err)
	}
	return result, nil
}
