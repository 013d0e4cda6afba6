package bootstrap

import (
	"grandehotel-core/cmd/bootstrap/components"
	"grandehotel-core/internal/pkg/config"
	"grandehotel-core/internal/pkg/jwt"

	"go.uber.org/fx"
)

// Module assembles the whole application graph: core config and services,
// the database pool, then the layered components.
var Module = fx.Options(
	CoreModule,
	DBModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var CoreModule = fx.Module("core",
	fx.Provide(
		config.LoadConfig,
		newJWTService,
	),
)

func newJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
