package components

import (
	"grandehotel-core/internal/infra/session"
	"grandehotel-core/internal/pkg/clock"
	"grandehotel-core/internal/pkg/config"
	"grandehotel-core/internal/usecase"
	"grandehotel-core/internal/usecase/commands"
	"grandehotel-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewSessionStore,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewRoomTypeQueries,
		queries.NewUserQueries,
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewDraftCommands,
		usecase.NewTokenValidator,
	),
)

func NewSessionStore(cfg config.Config, clk clock.Clock) *session.Store {
	return session.NewStore(clk, cfg.Session.TTL)
}
