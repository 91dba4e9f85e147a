package repository

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, q db.Queryer, u *user.User) (uuid.UUID, error) {
	var id pgtype.UUID
	err := q.QueryRow(ctx, createUserSQL,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create user", err)
	}

	result := pgconv.UUIDPtrFromPgtype(id)
	if result == nil {
		return uuid.Nil, infra.WrapRepoErr("create user returned null id", nil)
	}
	return *result, nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, q db.Queryer, id uuid.UUID) error {
	tag, err := q.Exec(ctx, updateLastLoginSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
