package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrPropertyNotFound        = errs.New("property not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrPropertyUnavailable     = errs.New("property unavailable")
	ErrGuestCountExceeded      = errs.New("guest count exceeded")
	ErrCheckInInPast           = errs.New("check-in in past")
	ErrInvalidStayRange        = errs.New("invalid date range")
	ErrInvalidGuestDetails     = errs.New("invalid guest details")
	ErrDatesUnavailable        = errs.New("dates unavailable")
	ErrInvalidStatus           = errs.New("invalid status")
	ErrForbidden               = errs.New("forbidden")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// DatesUnavailableError carries the ids of the active bookings that block
// the requested range. errors.Is(err, ErrDatesUnavailable) matches it.
type DatesUnavailableError struct {
	ConflictIDs []uuid.UUID
}

func (e *DatesUnavailableError) Error() string {
	return fmt.Sprintf("dates unavailable: %d conflicting booking(s)", len(e.ConflictIDs))
}

func (e *DatesUnavailableError) Is(target error) bool {
	return target == ErrDatesUnavailable
}

type CreateBookingParams struct {
	PropertyID      uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	GuestName       string
	Contact         string
	TravelType      string
	SpecialRequests *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, clientID uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, requesterID uuid.UUID) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, requesterID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	propertyRepo   PropertyRepository
	bookingFactory *booking.Factory
	bookingQueries queries.BookingQueries
	db             db.Pool
	queryTimeout   time.Duration
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	pool db.Pool,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		propertyRepo:   propertyRepo,
		bookingFactory: bookingFactory,
		bookingQueries: bookingQueries,
		db:             pool,
		queryTimeout:   cfg.DB.QueryTimeout,
	}
}

// CreateBooking runs the read-validate-insert sequence inside a single
// transaction holding a per-property advisory lock, so two concurrent
// requests for the same property are serialized and the second one sees the
// first one's insert. The bookings exclusion constraint backs this up: even
// if an insert arrives outside the lock, the database rejects the second
// overlapping range atomically and the violation maps to the same
// dates-unavailable rejection.
func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams, clientID uuid.UUID) (*queries.BookingView, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	bookingID, err := u.createInTx(ctx, params, clientID)
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the complete view from the read store
	view, err := u.bookingQueries.GetByID(ctx, clientID, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *bookingCommandsImpl) createInTx(ctx context.Context, params CreateBookingParams, clientID uuid.UUID) (uuid.UUID, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.bookingRepo.AcquirePropertyLock(ctx, tx, params.PropertyID); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	propSnapshot, err := u.propertyRepo.FindSnapshotByID(ctx, tx, params.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrPropertyNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := u.buildBooking(propSnapshot, params, clientID)
	if err != nil {
		return uuid.Nil, err
	}

	stays, err := u.bookingRepo.FindActiveStays(ctx, tx, params.PropertyID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflicts := booking.FindConflicts(entity.Stay(), stays); len(conflicts) > 0 {
		return uuid.Nil, &DatesUnavailableError{ConflictIDs: conflicts}
	}

	bookingID, err := u.bookingRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Exclusion constraint fired: a competing insert won the race.
			return uuid.Nil, &DatesUnavailableError{}
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return uuid.Nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return bookingID, nil
}

func (u *bookingCommandsImpl) buildBooking(snap *PropertySnapshot, params CreateBookingParams, clientID uuid.UUID) (*booking.Booking, error) {
	prop := property.ReconstructProperty(
		snap.ID, snap.OwnerID, snap.Name,
		snap.MaxGuests, snap.PricePerNightCents, snap.IsAvailable,
		time.Time{}, time.Time{},
	)

	details := booking.GuestDetails{
		Name:       params.GuestName,
		Contact:    params.Contact,
		TravelType: booking.TravelType(params.TravelType),
	}
	if params.SpecialRequests != nil {
		details.SpecialRequests = booking.NewNote(*params.SpecialRequests)
	}

	entity, err := u.bookingFactory.CreateBooking(prop, clientID, params.CheckIn, params.CheckOut, params.GuestCount, details)
	if err != nil {
		return nil, markValidationError(err)
	}
	return entity, nil
}

// markValidationError translates domain sentinels into the command-level
// taxonomy the handlers switch on.
func markValidationError(err error) error {
	switch {
	case errors.Is(err, booking.ErrPropertyUnavailable):
		return errs.Mark(err, ErrPropertyUnavailable)
	case errors.Is(err, booking.ErrGuestCountExceeded), errors.Is(err, booking.ErrInvalidGuestCount):
		return errs.Mark(err, ErrGuestCountExceeded)
	case errors.Is(err, booking.ErrCheckInInPast):
		return errs.Mark(err, ErrCheckInInPast)
	case errors.Is(err, booking.ErrInvalidStayRange):
		return errs.Mark(err, ErrInvalidStayRange)
	case errors.Is(err, booking.ErrInvalidTravelType),
		errors.Is(err, booking.ErrEmptyGuestName),
		errors.Is(err, booking.ErrEmptyContact):
		return errs.Mark(err, ErrInvalidGuestDetails)
	default:
		return errs.Mark(err, ErrInvalidGuestDetails)
	}
}

// UpdateStatus is restricted to the owner of the booking's property. Any
// status may move to any other status; only enum membership is enforced.
func (u *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, requesterID uuid.UUID) (*queries.BookingView, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	status, err := booking.ParseStatus(newStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	snap, err := u.authorizeOwner(ctx, bookingID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.UpdateStatus(ctx, u.db, bookingID, status); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindConflict):
			// Reactivating over dates another active booking took in the
			// meantime. Same rejection as a fresh overlapping create.
			return nil, u.reactivationConflict(ctx, snap)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.bookingQueries.GetByID(ctx, requesterID, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// reactivationConflict names the active stays that block the booking's range
// once the exclusion constraint has rejected the status change.
func (u *bookingCommandsImpl) reactivationConflict(ctx context.Context, snap *BookingSnapshot) error {
	stays, err := u.bookingRepo.FindActiveStays(ctx, u.db, snap.PropertyID)
	if err != nil {
		return &DatesUnavailableError{}
	}

	candidate := booking.UncheckedStayRange(snap.CheckIn, snap.CheckOut)
	var conflicts []uuid.UUID
	for _, id := range booking.FindConflicts(candidate, stays) {
		if id != snap.ID {
			conflicts = append(conflicts, id)
		}
	}
	return &DatesUnavailableError{ConflictIDs: conflicts}
}

// DeleteBooking hard-deletes, owner only. Permitted at any status.
func (u *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID, requesterID uuid.UUID) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	if _, err := u.authorizeOwner(ctx, bookingID, requesterID); err != nil {
		return err
	}

	if err := u.bookingRepo.Delete(ctx, u.db, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// authorizeOwner resolves booking → property → owner and compares against
// the requester. This is the only access-control decision in the write path.
func (u *bookingCommandsImpl) authorizeOwner(ctx context.Context, bookingID, requesterID uuid.UUID) (*BookingSnapshot, error) {
	snap, err := u.bookingRepo.FindSnapshotByID(ctx, u.db, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	propSnapshot, err := u.propertyRepo.FindSnapshotByID(ctx, u.db, snap.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if propSnapshot.OwnerID != requesterID {
		return nil, ErrForbidden
	}
	return snap, nil
}

func (u *bookingCommandsImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.queryTimeout)
}

func isTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
