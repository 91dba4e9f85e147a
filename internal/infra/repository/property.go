package repository

import (
	"context"
	"fmt"
	"strings"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyRepository struct{}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

const createPropertySQL = `
INSERT INTO properties (id, owner_id, name, max_guests, price_per_night_cents, is_available)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *PropertyRepository) Create(ctx context.Context, q db.Queryer, p *property.Property) (uuid.UUID, error) {
	var id pgtype.UUID
	err := q.QueryRow(ctx, createPropertySQL,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.OwnerID()),
		p.Name(),
		int32(p.MaxGuests()),
		p.PricePerNightCents(),
		p.IsAvailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create property", err)
	}

	result := pgconv.UUIDPtrFromPgtype(id)
	if result == nil {
		return uuid.Nil, infra.WrapRepoErr("create property returned null id", nil)
	}
	return *result, nil
}

// Update builds the SET clause from the non-nil patch fields.
func (r *PropertyRepository) Update(ctx context.Context, q db.Queryer, id uuid.UUID, patch commands.PropertyPatch) error {
	sets := make([]string, 0, 4)
	args := []any{pgconv.UUIDToPgtype(id)}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.MaxGuests != nil {
		addSet("max_guests", int32(*patch.MaxGuests))
	}
	if patch.PricePerNightCents != nil {
		addSet("price_per_night_cents", *patch.PricePerNightCents)
	}
	if patch.IsAvailable != nil {
		addSet("is_available", *patch.IsAvailable)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	sql := fmt.Sprintf("UPDATE properties SET %s WHERE id = $1", strings.Join(sets, ", "))
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteErr("failed to update property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

const findPropertySnapshotSQL = `
SELECT id, owner_id, name, max_guests, price_per_night_cents, is_available
FROM properties WHERE id = $1`

func (r *PropertyRepository) FindSnapshotByID(ctx context.Context, q db.Queryer, id uuid.UUID) (*commands.PropertySnapshot, error) {
	var (
		propertyID         pgtype.UUID
		ownerID            pgtype.UUID
		name               string
		maxGuests          int32
		pricePerNightCents int64
		isAvailable        bool
	)
	err := q.QueryRow(ctx, findPropertySnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&propertyID, &ownerID, &name, &maxGuests, &pricePerNightCents, &isAvailable)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}

	return &commands.PropertySnapshot{
		ID:                 *pgconv.UUIDPtrFromPgtype(propertyID),
		OwnerID:            *pgconv.UUIDPtrFromPgtype(ownerID),
		Name:               name,
		MaxGuests:          int(maxGuests),
		PricePerNightCents: pricePerNightCents,
		IsAvailable:        isAvailable,
	}, nil
}
