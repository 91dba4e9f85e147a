package queries

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound = errs.New("property not found")
	ErrPropertyAccess   = errs.New("property access denied")
)

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PropertyView, error)
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*PropertyView, error)
}

type propertyQueriesImpl struct {
	readStore PropertyReadStore
}

func NewPropertyQueries(readStore PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{readStore: readStore}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *propertyQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PropertyView, error) {
	return q.readStore.FindByOwnerID(ctx, ownerID)
}
