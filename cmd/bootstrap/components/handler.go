package components

import (
	"grandehotel-core/internal/handler"
	"grandehotel-core/internal/handler/api"
	"grandehotel-core/internal/handler/middleware"
	"grandehotel-core/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewDraftHandler,
		api.NewBookingHandler,
		api.NewHotelHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
