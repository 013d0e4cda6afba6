package components

import (
	"grandehotel-core/internal/infra/readstore"
	"grandehotel-core/internal/infra/repository"
	"grandehotel-core/internal/usecase/commands"
	"grandehotel-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// RepositoryModule binds the pgx-backed write repositories and read stores
// to the interfaces the usecase layer depends on. The pool satisfies each
// package's row-level access interface directly.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(pool *pgxpool.Pool) commands.BookingRepository {
			return repository.NewBookingRepository(pool)
		},
		func(pool *pgxpool.Pool) commands.RoomTypeRepository {
			return repository.NewRoomTypeRepository(pool)
		},
		func(pool *pgxpool.Pool) commands.UserRepository {
			return repository.NewUserRepository(pool)
		},
		func(pool *pgxpool.Pool) queries.BookingReadStore {
			return readstore.NewBookingReadStore(pool)
		},
		func(pool *pgxpool.Pool) queries.BookingStayReadStore {
			return readstore.NewBookingStayReadStore(pool)
		},
		func(pool *pgxpool.Pool) queries.RoomTypeReadStore {
			return readstore.NewRoomTypeReadStore(pool)
		},
		func(pool *pgxpool.Pool) queries.UserReadStore {
			return readstore.NewUserReadStore(pool)
		},
	),
)
