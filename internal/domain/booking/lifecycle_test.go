//go:build unit

package booking_test

import (
	"testing"

	"grandehotel-core/internal/domain/booking"
	"grandehotel-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusApproved,
	booking.StatusRejected,
	booking.StatusPaid,
	booking.StatusCheckedIn,
	booking.StatusCheckedOut,
}

func TestAttemptTransition(t *testing.T) {
	t.Run("legal transitions", func(t *testing.T) {
		legal := []struct {
			from, to booking.Status
		}{
			{booking.StatusPending, booking.StatusApproved},
			{booking.StatusPending, booking.StatusRejected},
			{booking.StatusApproved, booking.StatusPaid},
			{booking.StatusPaid, booking.StatusCheckedIn},
			{booking.StatusCheckedIn, booking.StatusCheckedOut},
		}
		for _, tc := range legal {
			next, err := booking.AttemptTransition(tc.from, tc.to)
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, next)
		}
	})

	t.Run("illegal transitions fail", func(t *testing.T) {
		illegal := []struct {
			from, to booking.Status
		}{
			{booking.StatusPending, booking.StatusPaid},
			{booking.StatusPending, booking.StatusCheckedIn},
			{booking.StatusApproved, booking.StatusRejected},
			{booking.StatusApproved, booking.StatusCheckedOut},
			{booking.StatusPaid, booking.StatusApproved},
			{booking.StatusCheckedIn, booking.StatusPending},
			{booking.StatusRejected, booking.StatusApproved},
			{booking.StatusCheckedOut, booking.StatusCheckedIn},
		}
		for _, tc := range illegal {
			_, err := booking.AttemptTransition(tc.from, tc.to)
			assert.ErrorIs(t, err, booking.ErrIllegalTransition, "%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("no-op transition fails for every status", func(t *testing.T) {
		for _, s := range allStatuses {
			_, err := booking.AttemptTransition(s, s)
			assert.ErrorIs(t, err, booking.ErrNoOpTransition, "%s", s)
		}
	})

	t.Run("unknown statuses fail", func(t *testing.T) {
		_, err := booking.AttemptTransition(booking.Status("limbo"), booking.StatusApproved)
		assert.ErrorIs(t, err, booking.ErrUnknownStatus)

		_, err = booking.AttemptTransition(booking.StatusPending, booking.Status("limbo"))
		assert.ErrorIs(t, err, booking.ErrUnknownStatus)
	})
}

func TestAvailableActions(t *testing.T) {
	t.Run("every action is itself a legal transition", func(t *testing.T) {
		for _, s := range allStatuses {
			for _, action := range booking.AvailableActions(s) {
				next, err := booking.AttemptTransition(s, action)
				require.NoError(t, err, "%s -> %s", s, action)
				assert.Equal(t, action, next)
			}
		}
	})

	t.Run("empty exactly for terminal statuses", func(t *testing.T) {
		for _, s := range allStatuses {
			actions := booking.AvailableActions(s)
			if s.IsTerminal() {
				assert.Empty(t, actions, "%s", s)
			} else {
				assert.NotEmpty(t, actions, "%s", s)
			}
		}
	})

	t.Run("no legal path returns to pending", func(t *testing.T) {
		// BFS over the transition table from pending.
		visited := map[booking.Status]bool{}
		frontier := []booking.Status{booking.StatusPending}
		for len(frontier) > 0 {
			current := frontier[0]
			frontier = frontier[1:]
			for _, next := range booking.AvailableActions(current) {
				assert.NotEqual(t, booking.StatusPending, next)
				if !visited[next] {
					visited[next] = true
					frontier = append(frontier, next)
				}
			}
		}
	})
}

func TestBookingChangeStatus(t *testing.T) {
	t.Run("applies legal transition", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.ChangeStatus(booking.StatusApproved))
		assert.Equal(t, booking.StatusApproved, b.Status())
		assert.Equal(t, []booking.Status{booking.StatusPaid}, b.AvailableActions())
	})

	t.Run("keeps status on illegal transition", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		err = b.ChangeStatus(booking.StatusCheckedOut)
		assert.ErrorIs(t, err, booking.ErrIllegalTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("terminal booking has no actions", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusRejected).BuildDomain()
		require.NoError(t, err)
		assert.Empty(t, b.AvailableActions())
	})
}
