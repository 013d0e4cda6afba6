//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"grandehotel-core/internal/domain/roomtype"
	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/infra/session"
	"grandehotel-core/internal/pkg/clock"
	"grandehotel-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomTypeRepo struct {
	catalogEntry   *roomtype.RoomType
	findErr        error
	availableUnits int
	availableErr   error
}

func (r *stubRoomTypeRepo) FindByID(_ context.Context, _ uuid.UUID) (*roomtype.RoomType, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.catalogEntry, nil
}

func (r *stubRoomTypeRepo) AvailableUnits(_ context.Context, _ uuid.UUID, _ stay.Range) (int, error) {
	if r.availableErr != nil {
		return 0, r.availableErr
	}
	return r.availableUnits, nil
}

type draftFixture struct {
	commands   commands.DraftCommands
	sessionKey uuid.UUID
	hotelID    uuid.UUID
	roomTypeID uuid.UUID
	repo       *stubRoomTypeRepo
}

func newDraftFixture(t *testing.T) *draftFixture {
	t.Helper()
	hotelID := uuid.New()
	roomTypeID := uuid.New()
	catalogEntry, err := roomtype.NewRoomType(roomTypeID, hotelID, "Deluxe Twin", 15000, 5)
	require.NoError(t, err)
	repo := &stubRoomTypeRepo{
		catalogEntry:   catalogEntry,
		availableUnits: 5,
	}
	store := session.NewStore(clock.NewMockClock(time.Now()), time.Hour)
	return &draftFixture{
		commands:   commands.NewDraftCommands(store, repo, &stubBookingRepo{}, &stubBookingQueries{}, nil),
		sessionKey: uuid.New(),
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		repo:       repo,
	}
}

func (f *draftFixture) addRoomInput(qty int) commands.AddRoomInput {
	return commands.AddRoomInput{
		HotelID:    f.hotelID,
		RoomTypeID: f.roomTypeID,
		Quantity:   qty,
		Adults:     2,
	}
}

func TestDraftEditing(t *testing.T) {
	checkIn := time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	t.Run("set stay then add room prices three nights", func(t *testing.T) {
		f := newDraftFixture(t)

		view, err := f.commands.SetStay(context.Background(), f.sessionKey, checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, 3, view.Nights)
		assert.Empty(t, view.Lines)

		view, err = f.commands.AddRoom(context.Background(), f.sessionKey, f.addRoomInput(2))
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, int64(90000), view.TotalCents)
		assert.Equal(t, int64(90000), view.Lines[0].LineTotalCents)
	})

	t.Run("inverted stay range is rejected", func(t *testing.T) {
		f := newDraftFixture(t)

		_, err := f.commands.SetStay(context.Background(), f.sessionKey, checkOut, checkIn)
		assert.ErrorIs(t, err, commands.ErrInvalidStayRange)
	})

	t.Run("unknown room type", func(t *testing.T) {
		f := newDraftFixture(t)
		f.repo.findErr = infra.WrapRepoErr(infra.KindNotFound, "room type not found", nil)

		_, err := f.commands.AddRoom(context.Background(), f.sessionKey, f.addRoomInput(1))
		assert.ErrorIs(t, err, commands.ErrRoomTypeNotFound)
	})

	t.Run("room type of another hotel", func(t *testing.T) {
		f := newDraftFixture(t)
		input := f.addRoomInput(1)
		input.HotelID = uuid.New()

		_, err := f.commands.AddRoom(context.Background(), f.sessionKey, input)
		assert.ErrorIs(t, err, commands.ErrWrongHotel)
	})

	t.Run("availability bounds the quantity once a stay is set", func(t *testing.T) {
		f := newDraftFixture(t)
		f.repo.availableUnits = 1

		_, err := f.commands.SetStay(context.Background(), f.sessionKey, checkIn, checkOut)
		require.NoError(t, err)

		_, err = f.commands.AddRoom(context.Background(), f.sessionKey, f.addRoomInput(2))
		assert.ErrorIs(t, err, commands.ErrQuantityExceeded)
	})

	t.Run("remove then get reflects the empty draft", func(t *testing.T) {
		f := newDraftFixture(t)

		_, err := f.commands.AddRoom(context.Background(), f.sessionKey, f.addRoomInput(1))
		require.NoError(t, err)

		view, err := f.commands.RemoveRoom(context.Background(), f.sessionKey, f.roomTypeID)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Equal(t, int64(0), view.TotalCents)

		view, err = f.commands.Get(context.Background(), f.sessionKey)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
	})

	t.Run("finalize without a stay range", func(t *testing.T) {
		f := newDraftFixture(t)

		_, err := f.commands.AddRoom(context.Background(), f.sessionKey, f.addRoomInput(1))
		require.NoError(t, err)

		_, err = f.commands.Finalize(context.Background(), f.sessionKey, f.hotelID, uuid.New(), "Alice Example")
		assert.ErrorIs(t, err, commands.ErrNoStayRange)
	})

	t.Run("finalize with no selections", func(t *testing.T) {
		f := newDraftFixture(t)

		_, err := f.commands.SetStay(context.Background(), f.sessionKey, checkIn, checkOut)
		require.NoError(t, err)

		_, err = f.commands.Finalize(context.Background(), f.sessionKey, f.hotelID, uuid.New(), "Alice Example")
		assert.ErrorIs(t, err, commands.ErrEmptySelection)
	})
}
