package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, property_id, client_id, check_in, check_out, guest_count,
    status, total_price_cents, guest_name, contact, travel_type, special_requests
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, q db.Queryer, b *booking.Booking) (uuid.UUID, error) {
	var specialRequests pgtype.Text
	if !b.Details().SpecialRequests.IsEmpty() {
		specialRequests = pgconv.StringToPgtype(b.Details().SpecialRequests.String())
	}

	var id pgtype.UUID
	err := q.QueryRow(ctx, createBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.PropertyID()),
		pgconv.UUIDToPgtype(b.ClientID()),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		int32(b.GuestCount()),
		b.Status().String(),
		b.TotalPrice().Cents(),
		b.Details().Name,
		b.Details().Contact,
		b.Details().TravelType.String(),
		specialRequests,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}

	result := pgconv.UUIDPtrFromPgtype(id)
	if result == nil {
		return uuid.Nil, infra.WrapRepoErr("create booking returned null id", nil)
	}
	return *result, nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, q db.Queryer, id uuid.UUID, status booking.Status) error {
	tag, err := q.Exec(ctx, updateBookingStatusSQL, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

func (r *BookingRepository) Delete(ctx context.Context, q db.Queryer, id uuid.UUID) error {
	tag, err := q.Exec(ctx, deleteBookingSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const findBookingSnapshotSQL = `
SELECT id, property_id, client_id, status, check_in, check_out
FROM bookings WHERE id = $1`

func (r *BookingRepository) FindSnapshotByID(ctx context.Context, q db.Queryer, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		bookingID  pgtype.UUID
		propertyID pgtype.UUID
		clientID   pgtype.UUID
		status     string
		checkIn    pgtype.Date
		checkOut   pgtype.Date
	)
	err := q.QueryRow(ctx, findBookingSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&bookingID, &propertyID, &clientID, &status, &checkIn, &checkOut)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return &commands.BookingSnapshot{
		ID:         *pgconv.UUIDPtrFromPgtype(bookingID),
		PropertyID: *pgconv.UUIDPtrFromPgtype(propertyID),
		ClientID:   *pgconv.UUIDPtrFromPgtype(clientID),
		Status:     booking.Status(status),
		CheckIn:    pgconv.DateFromPgtype(checkIn),
		CheckOut:   pgconv.DateFromPgtype(checkOut),
	}, nil
}

const findActiveStaysSQL = `
SELECT id, check_in, check_out
FROM bookings
WHERE property_id = $1 AND status IN ('pending', 'confirmed')
ORDER BY check_in`

func (r *BookingRepository) FindActiveStays(ctx context.Context, q db.Queryer, propertyID uuid.UUID) ([]booking.ActiveStay, error) {
	rows, err := q.Query(ctx, findActiveStaysSQL, pgconv.UUIDToPgtype(propertyID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active stays", err)
	}
	defer rows.Close()

	var stays []booking.ActiveStay
	for rows.Next() {
		var (
			id       pgtype.UUID
			checkIn  pgtype.Date
			checkOut pgtype.Date
		)
		if err := rows.Scan(&id, &checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active stay", err)
		}
		stays = append(stays, booking.ActiveStay{
			ID:    *pgconv.UUIDPtrFromPgtype(id),
			Range: booking.UncheckedStayRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active stays", err)
	}
	return stays, nil
}

const acquirePropertyLockSQL = `SELECT pg_advisory_xact_lock(hashtext($1::text))`

// AcquirePropertyLock serializes booking creation per property for the
// duration of the surrounding transaction.
func (r *BookingRepository) AcquirePropertyLock(ctx context.Context, q db.Queryer, propertyID uuid.UUID) error {
	if _, err := q.Exec(ctx, acquirePropertyLockSQL, propertyID.String()); err != nil {
		return infra.WrapRepoErr("failed to acquire property lock", err)
	}
	return nil
}
