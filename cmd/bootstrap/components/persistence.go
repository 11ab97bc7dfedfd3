package components

import (
	"donorhub/internal/infra/db"
	"donorhub/internal/infra/readstore"
	"donorhub/internal/infra/uow"
	"donorhub/internal/usecase/queries"
	"donorhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewRegistrationReadStore,
			fx.As(new(queries.RegistrationReadStore)),
		),
		fx.Annotate(
			readstore.NewDonationReadStore,
			fx.As(new(queries.DonationReadStore)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		fx.Annotate(
			readstore.NewEligibilityReadStore,
			fx.As(new(queries.EligibilityReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewHospitalReadStore,
			fx.As(new(queries.HospitalReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
