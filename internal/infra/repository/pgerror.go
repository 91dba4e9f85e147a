package repository

import (
	"errors"

	"stayhub/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgForeignKeyViolated = "23503"
	pgExclusionViolation = "23P01"
)

// wrapWriteErr classifies constraint violations before falling back to the
// generic DB failure kind.
func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		case pgExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
