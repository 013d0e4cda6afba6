package response

import "grandehotel-core/internal/usecase/queries"

// BookingActionsResponse is the authorization surface for the detail view:
// the UI renders exactly these transitions as buttons.
type BookingActionsResponse struct {
	Status  string   `json:"status"`
	Actions []string `json:"actions"`
}

func FromBookingView(view *queries.BookingView) BookingActionsResponse {
	return BookingActionsResponse{
		Status:  view.Status,
		Actions: view.Actions,
	}
}
