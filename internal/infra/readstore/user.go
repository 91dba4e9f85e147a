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

type UserReadStore struct {
	db db.Queryer
}

func NewUserReadStore(q db.Queryer) *UserReadStore {
	return &UserReadStore{db: q}
}

const findUserByIDSQL = `
SELECT id, email, role, is_active FROM users WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view   queries.AuthorizedUserView
		userID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&userID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	view.ID = *pgconv.UUIDPtrFromPgtype(userID)
	return &view, nil
}

const findUserByEmailSQL = `
SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		userID       pgtype.UUID
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).
		Scan(&userID, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	view.ID = *pgconv.UUIDPtrFromPgtype(userID)
	return &view, passwordHash, nil
}
