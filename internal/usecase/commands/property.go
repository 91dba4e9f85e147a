package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidPropertyInput = errs.New("invalid property input")
	ErrEmptyPatch           = errs.New("no fields to update")
)

type CreatePropertyParams struct {
	Name               string
	MaxGuests          int
	PricePerNightCents int64
}

type PropertyCommands interface {
	CreateProperty(ctx context.Context, params CreatePropertyParams, ownerID uuid.UUID) (*queries.PropertyView, error)
	UpdateProperty(ctx context.Context, propertyID uuid.UUID, patch PropertyPatch, requesterID uuid.UUID) (*queries.PropertyView, error)
}

type propertyCommandsImpl struct {
	propertyRepo    PropertyRepository
	propertyQueries queries.PropertyQueries
	db              db.Queryer
	queryTimeout    time.Duration
}

func NewPropertyCommands(
	propertyRepo PropertyRepository,
	propertyQueries queries.PropertyQueries,
	q db.Queryer,
	cfg config.Config,
) PropertyCommands {
	return &propertyCommandsImpl{
		propertyRepo:    propertyRepo,
		propertyQueries: propertyQueries,
		db:              q,
		queryTimeout:    cfg.DB.QueryTimeout,
	}
}

func (u *propertyCommandsImpl) CreateProperty(ctx context.Context, params CreatePropertyParams, ownerID uuid.UUID) (*queries.PropertyView, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	entity, err := property.NewProperty(ownerID, params.Name, params.MaxGuests, params.PricePerNightCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPropertyInput)
	}

	id, err := u.propertyRepo.Create(ctx, u.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.propertyQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *propertyCommandsImpl) UpdateProperty(ctx context.Context, propertyID uuid.UUID, patch PropertyPatch, requesterID uuid.UUID) (*queries.PropertyView, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	snap, err := u.propertyRepo.FindSnapshotByID(ctx, u.db, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.OwnerID != requesterID {
		return nil, ErrForbidden
	}

	if err := u.propertyRepo.Update(ctx, u.db, propertyID, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.propertyQueries.GetByID(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func validatePatch(patch PropertyPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return errs.Mark(property.ErrEmptyName, ErrInvalidPropertyInput)
	}
	if patch.MaxGuests != nil && *patch.MaxGuests <= 0 {
		return errs.Mark(property.ErrInvalidMaxGuests, ErrInvalidPropertyInput)
	}
	if patch.PricePerNightCents != nil && *patch.PricePerNightCents < 0 {
		return errs.Mark(property.ErrNegativePrice, ErrInvalidPropertyInput)
	}
	return nil
}

func (u *propertyCommandsImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.queryTimeout)
}
