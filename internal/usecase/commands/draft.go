package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"grandehotel-core/internal/domain/booking"
	domdraft "grandehotel-core/internal/domain/draft"
	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/infra/session"
	"grandehotel-core/internal/pkg/errs"
	"grandehotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidStayRange = errs.New("invalid stay range")
	ErrRoomTypeNotFound = errs.New("room type not found")
	ErrWrongHotel       = errs.New("room type belongs to a different hotel")
	ErrQuantityExceeded = errs.New("requested quantity exceeds availability")
	ErrInvalidOccupants = errs.New("invalid occupant counts")
	ErrInvalidQuantity  = errs.New("invalid quantity")
	ErrNoStayRange      = errs.New("stay range has not been set")
	ErrEmptySelection   = errs.New("no room types selected")
)

// DraftView is the editable state echoed back to the booking form after
// every mutation.
type DraftView struct {
	CheckIn    *time.Time      `json:"check_in,omitempty"`
	CheckOut   *time.Time      `json:"check_out,omitempty"`
	Nights     int             `json:"nights"`
	Lines      []DraftLineView `json:"lines"`
	TotalCents int64           `json:"total_cents"`
}

type DraftLineView struct {
	RoomTypeID     uuid.UUID `json:"room_type_id"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	Infants        int       `json:"infants"`
	LineTotalCents int64     `json:"line_total_cents"`
}

type AddRoomInput struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
	Quantity   int
	Adults     int
	Children   int
	Infants    int
}

type DraftCommands interface {
	SetStay(ctx context.Context, sessionKey uuid.UUID, checkIn, checkOut time.Time) (*DraftView, error)
	AddRoom(ctx context.Context, sessionKey uuid.UUID, input AddRoomInput) (*DraftView, error)
	RemoveRoom(ctx context.Context, sessionKey uuid.UUID, roomTypeID uuid.UUID) (*DraftView, error)
	Get(ctx context.Context, sessionKey uuid.UUID) (*DraftView, error)
	// Finalize snapshots the session's aggregator into an immutable draft and
	// persists it as a pending booking in one transaction. The session is
	// cleared on success.
	Finalize(ctx context.Context, sessionKey uuid.UUID, hotelID, guestID uuid.UUID, guestName string) (*queries.BookingView, error)
}

type draftCommandsImpl struct {
	drafts         *session.Store
	roomTypeRepo   RoomTypeRepository
	bookingRepo    BookingRepository
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool
}

func NewDraftCommands(
	drafts *session.Store,
	roomTypeRepo RoomTypeRepository,
	bookingRepo BookingRepository,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
) DraftCommands {
	return &draftCommandsImpl{
		drafts:         drafts,
		roomTypeRepo:   roomTypeRepo,
		bookingRepo:    bookingRepo,
		bookingQueries: bookingQueries,
		db:             db,
	}
}

func (c *draftCommandsImpl) SetStay(_ context.Context, sessionKey uuid.UUID, checkIn, checkOut time.Time) (*DraftView, error) {
	var view *DraftView
	err := c.drafts.WithDraft(sessionKey, func(agg *domdraft.Aggregator) error {
		r, err := stay.NewRange(checkIn, checkOut)
		if err != nil {
			return errs.Mark(err, ErrInvalidStayRange)
		}
		if err := agg.SetStay(r); err != nil {
			return errs.Mark(err, ErrInvalidStayRange)
		}
		view = c.buildView(agg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *draftCommandsImpl) AddRoom(ctx context.Context, sessionKey uuid.UUID, input AddRoomInput) (*DraftView, error) {
	catalogEntry, err := c.roomTypeRepo.FindByID(ctx, input.RoomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if catalogEntry.HotelID() != input.HotelID {
		return nil, ErrWrongHotel
	}

	unitPrice, err := domdraft.NewMoney(catalogEntry.UnitPriceCents())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var view *DraftView
	err = c.drafts.WithDraft(sessionKey, func(agg *domdraft.Aggregator) error {
		availableUnits := catalogEntry.TotalUnits()
		if r, ok := agg.Stay(); ok {
			availableUnits, err = c.roomTypeRepo.AvailableUnits(ctx, input.RoomTypeID, r)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		occupants := domdraft.Occupants{Adults: input.Adults, Children: input.Children, Infants: input.Infants}
		if addErr := agg.AddOrMerge(input.RoomTypeID, unitPrice, input.Quantity, occupants, availableUnits); addErr != nil {
			switch {
			case errors.Is(addErr, domdraft.ErrQuantityExceeded):
				return errs.Mark(addErr, ErrQuantityExceeded)
			case errors.Is(addErr, domdraft.ErrInvalidOccupants):
				return errs.Mark(addErr, ErrInvalidOccupants)
			default:
				return errs.Mark(addErr, ErrInvalidQuantity)
			}
		}
		view = c.buildView(agg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *draftCommandsImpl) RemoveRoom(_ context.Context, sessionKey uuid.UUID, roomTypeID uuid.UUID) (*DraftView, error) {
	var view *DraftView
	err := c.drafts.WithDraft(sessionKey, func(agg *domdraft.Aggregator) error {
		agg.Remove(roomTypeID)
		view = c.buildView(agg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *draftCommandsImpl) Get(_ context.Context, sessionKey uuid.UUID) (*DraftView, error) {
	var view *DraftView
	err := c.drafts.WithDraft(sessionKey, func(agg *domdraft.Aggregator) error {
		view = c.buildView(agg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *draftCommandsImpl) Finalize(ctx context.Context, sessionKey uuid.UUID, hotelID, guestID uuid.UUID, guestName string) (*queries.BookingView, error) {
	var snapshot *domdraft.Draft
	err := c.drafts.WithDraft(sessionKey, func(agg *domdraft.Aggregator) error {
		d, finalizeErr := agg.Finalize(hotelID)
		if finalizeErr != nil {
			switch {
			case errors.Is(finalizeErr, domdraft.ErrNoStayRange):
				return errs.Mark(finalizeErr, ErrNoStayRange)
			case errors.Is(finalizeErr, domdraft.ErrEmptySelection):
				return errs.Mark(finalizeErr, ErrEmptySelection)
			default:
				return finalizeErr
			}
		}
		snapshot = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	rooms := make([]booking.BookedRoom, 0, len(snapshot.Selections()))
	for _, sel := range snapshot.Selections() {
		occ := sel.Occupants()
		rooms = append(rooms, booking.BookedRoom{
			RoomTypeID:     sel.RoomTypeID(),
			Quantity:       sel.Quantity(),
			UnitPriceCents: sel.UnitPrice().Cents(),
			Adults:         occ.Adults,
			Children:       occ.Children,
			Infants:        occ.Infants,
		})
	}
	entity := booking.NewBooking(hotelID, guestID, guestName, snapshot.Stay(), rooms, snapshot.GrandTotal().Cents())

	bookingID, err := c.persistBooking(ctx, entity)
	if err != nil {
		return nil, err
	}

	c.drafts.Clear(sessionKey)

	return c.bookingQueries.GetByID(ctx, bookingID)
}

func (c *draftCommandsImpl) persistBooking(ctx context.Context, entity *booking.Booking) (uuid.UUID, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	bookingID, err := c.bookingRepo.Create(ctx, tx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookingID, nil
}

func (c *draftCommandsImpl) buildView(agg *domdraft.Aggregator) *DraftView {
	view := &DraftView{
		Lines:      make([]DraftLineView, 0, len(agg.Selections())),
		TotalCents: agg.GrandTotal().Cents(),
	}
	if r, ok := agg.Stay(); ok {
		checkIn := r.CheckIn()
		checkOut := r.CheckOut()
		view.CheckIn = &checkIn
		view.CheckOut = &checkOut
		view.Nights = r.Nights()
	}
	for _, sel := range agg.Selections() {
		occ := sel.Occupants()
		view.Lines = append(view.Lines, DraftLineView{
			RoomTypeID:     sel.RoomTypeID(),
			UnitPriceCents: sel.UnitPrice().Cents(),
			Quantity:       sel.Quantity(),
			Adults:         occ.Adults,
			Children:       occ.Children,
			Infants:        occ.Infants,
			LineTotalCents: agg.LineTotal(sel.RoomTypeID()).Cents(),
		})
	}
	return view
}
