package commands

import (
	"context"
	"errors"
	"log/slog"

	"grandehotel-core/internal/domain/booking"
	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/pkg/errs"
	"grandehotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrUnknownStatus           = errs.New("unknown booking status")
	ErrIllegalTransition       = errs.New("illegal status transition")
	ErrNoOpTransition          = errs.New("booking already has the requested status")
	ErrStatusConflict          = errs.New("booking status changed concurrently")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	// ChangeStatus applies one lifecycle transition to a persisted booking
	// and returns the refreshed view with its next available actions.
	ChangeStatus(ctx context.Context, bookingID uuid.UUID, requested string, changedBy uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		bookingQueries: bookingQueries,
		db:             db,
	}
}

func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, bookingID uuid.UUID, requested string, changedBy uuid.UUID) (*queries.BookingView, error) {
	requestedStatus, err := booking.NewStatus(requested)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownStatus)
	}

	entity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	current := entity.Status()
	if err := entity.ChangeStatus(requestedStatus); err != nil {
		switch {
		case errors.Is(err, booking.ErrNoOpTransition):
			return nil, errs.Mark(err, ErrNoOpTransition)
		case errors.Is(err, booking.ErrIllegalTransition):
			return nil, errs.Mark(err, ErrIllegalTransition)
		default:
			return nil, errs.Mark(err, ErrUnknownStatus)
		}
	}

	if err := c.persistTransition(ctx, bookingID, current, entity.Status(), changedBy); err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByID(ctx, bookingID)
}

func (c *bookingCommandsImpl) persistTransition(ctx context.Context, bookingID uuid.UUID, from, to booking.Status, changedBy uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// The update is guarded on the status the decision was made against, so
	// a concurrent transition loses cleanly instead of being overwritten.
	if err := c.bookingRepo.UpdateStatus(ctx, tx, bookingID, from, to); err != nil {
		if infra.IsKind(err, infra.KindStaleStatus) {
			return ErrStatusConflict
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.bookingRepo.AppendStatusHistory(ctx, tx, bookingID, from, to, changedBy); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
