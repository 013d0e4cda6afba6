//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grandehotel-core/internal/handler/api"
	"grandehotel-core/internal/usecase/commands"
	"grandehotel-core/internal/usecase/queries"
	"grandehotel-core/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingCommands struct {
	view *queries.BookingView
	err  error
}

func (s *stubBookingCommands) ChangeStatus(_ context.Context, _ uuid.UUID, _ string, _ uuid.UUID) (*queries.BookingView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type stubBookingQueries struct {
	view *queries.BookingView
	err  error
}

func (s *stubBookingQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubBookingQueries) ListByHotel(_ context.Context, _ uuid.UUID, _ int) ([]*queries.BookingListItem, error) {
	return nil, s.err
}

func (s *stubBookingQueries) ListByGuest(_ context.Context, _ uuid.UUID, _ int) ([]*queries.BookingListItem, error) {
	return nil, s.err
}

func newBookingRouter(cmds commands.BookingCommands, qs queries.BookingQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewBookingHandler(cmds, qs)

	authed := func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Next()
	}
	router.GET("/bookings/:id", authed, handler.Get)
	router.GET("/bookings/:id/actions", authed, handler.Actions)
	router.PATCH("/bookings/:id/status", authed, handler.ChangeStatus)
	return router
}

func TestBookingHandlerChangeStatus(t *testing.T) {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"
	body := `{"status":"approved"}`

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
		{name: "unknown status", err: commands.ErrUnknownStatus, expectCode: http.StatusBadRequest},
		{name: "no-op transition", err: commands.ErrNoOpTransition, expectCode: http.StatusUnprocessableEntity},
		{name: "illegal transition", err: commands.ErrIllegalTransition, expectCode: http.StatusUnprocessableEntity},
		{name: "concurrent change", err: commands.ErrStatusConflict, expectCode: http.StatusConflict},
		{name: "infra failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newBookingRouter(&stubBookingCommands{err: tc.err}, &stubBookingQueries{})

			req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}

	t.Run("success returns the refreshed view", func(t *testing.T) {
		view := builder.NewBookingBuilder().BuildView()
		view.Status = "approved"
		view.Actions = []string{"paid"}
		router := newBookingRouter(&stubBookingCommands{view: view}, &stubBookingQueries{})

		req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got queries.BookingView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "approved", got.Status)
		assert.Equal(t, []string{"paid"}, got.Actions)
	})

	t.Run("malformed booking id", func(t *testing.T) {
		router := newBookingRouter(&stubBookingCommands{}, &stubBookingQueries{})

		req := httptest.NewRequest(http.MethodPatch, "/bookings/not-a-uuid/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandlerActions(t *testing.T) {
	t.Run("returns status with actions", func(t *testing.T) {
		view := builder.NewBookingBuilder().BuildView()
		view.Actions = []string{"approved", "rejected"}
		router := newBookingRouter(&stubBookingCommands{}, &stubBookingQueries{view: view})

		req := httptest.NewRequest(http.MethodGet, "/bookings/"+view.ID.String()+"/actions", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Status  string   `json:"status"`
			Actions []string `json:"actions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, []string{"approved", "rejected"}, got.Actions)
	})

	t.Run("not found", func(t *testing.T) {
		router := newBookingRouter(&stubBookingCommands{}, &stubBookingQueries{err: queries.ErrBookingNotFound})

		req := httptest.NewRequest(http.MethodGet, "/bookings/"+uuid.NewString()+"/actions", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
