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

type PropertyReadStore struct {
	db db.Queryer
}

func NewPropertyReadStore(q db.Queryer) *PropertyReadStore {
	return &PropertyReadStore{db: q}
}

const findPropertyByIDSQL = `
SELECT id, owner_id, name, max_guests, price_per_night_cents, is_available,
       created_at, updated_at
FROM properties WHERE id = $1`

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row := r.db.QueryRow(ctx, findPropertyByIDSQL, pgconv.UUIDToPgtype(id))
	view, err := scanPropertyView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return view, nil
}

const findPropertiesByOwnerSQL = `
SELECT id, owner_id, name, max_guests, price_per_night_cents, is_available,
       created_at, updated_at
FROM properties WHERE owner_id = $1
ORDER BY created_at DESC, id DESC`

func (r *PropertyReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.PropertyView, error) {
	rows, err := r.db.Query(ctx, findPropertiesByOwnerSQL, pgconv.UUIDToPgtype(ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find properties by owner", err)
	}
	defer rows.Close()

	result := make([]*queries.PropertyView, 0)
	for rows.Next() {
		view, err := scanPropertyView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan property row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read property rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPropertyView(row rowScanner) (*queries.PropertyView, error) {
	var (
		view       queries.PropertyView
		propertyID pgtype.UUID
		ownerID    pgtype.UUID
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&propertyID, &ownerID, &view.Name, &view.MaxGuests,
		&view.PricePerNightCents, &view.IsAvailable,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.ID = *pgconv.UUIDPtrFromPgtype(propertyID)
	view.OwnerID = *pgconv.UUIDPtrFromPgtype(ownerID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
