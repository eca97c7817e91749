package components

import (
	"campus-booking/internal/infra/cache"
	"campus-booking/internal/infra/db"
	"campus-booking/internal/infra/readstore"
	"campus-booking/internal/infra/uow"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/usecase/queries"
	"campus-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Venue directory, redis cache-aside in front of postgres
		readstore.NewVenueReadStore,
		fx.Annotate(
			NewVenueReads,
			fx.As(new(shared.VenueReads)),
		),
		// Reservation read store
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewVenueReads(store *readstore.VenueReadStore, rdb *redis.Client, cfg config.Config) *cache.CachedVenueReads {
	return cache.NewCachedVenueReads(store, rdb, cfg.Redis.VenueTTL)
}
