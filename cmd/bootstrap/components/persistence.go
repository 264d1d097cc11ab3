package components

import (
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/infra/readstore"
	"canteen-reservation/internal/infra/uow"
	"canteen-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewCanteenReadStore,
			fx.As(new(queries.CanteenReadStore)),
		),
		fx.Annotate(
			readstore.NewStudentReadStore,
			fx.As(new(queries.StudentReadStore)),
		),
		fx.Annotate(
			readstore.NewRestrictionReadStore,
			fx.As(new(queries.RestrictionReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
