package bootstrap

import (
	"context"

	"grandehotel-core/internal/infra/db"
	"grandehotel-core/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(newDBPool),
)

// newDBPool connects (and migrates, when configured) and ties the pool's
// lifetime to the fx lifecycle.
func newDBPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
