package components

import (
	"shareit/internal/infra/cache"
	"shareit/internal/infra/readstore"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/infra/uow"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	catalogModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Item
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemReadQueries)),
		),
		readstore.NewItemReadStore,
		fx.Annotate(
			func(s *readstore.ItemReadStore) *readstore.ItemReadStore { return s },
			fx.As(new(queries.ItemReadStore)),
		),
		// Comment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommentReadQueries)),
		),
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(shared.UserDirectory)),
		),
		// ItemRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemRequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewItemRequestReadStore,
			fx.As(new(queries.ItemRequestReadStore)),
		),
	),
)

// The item catalog is redis-backed when a client is configured.
var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		NewItemCatalog,
	),
)

func NewItemCatalog(items *readstore.ItemReadStore, client *redis.Client, cfg config.Config) (shared.ItemCatalog, shared.ItemCacheInvalidator) {
	if client == nil {
		return items, cache.NopInvalidator{}
	}
	c := cache.NewItemCatalogCache(items, client, cfg.Redis.ItemTTL)
	return c, c
}

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
