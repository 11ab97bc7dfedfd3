package components

import (
	"donorhub/internal/pkg/clock"
	"donorhub/internal/usecase"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/notify"
	"donorhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	notify.NewFeedDispatcher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRegistrationUseCase,
		commands.NewDonationUseCase,
		commands.NewInventoryUseCase,
		commands.NewEligibilityUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRegistrationQueries,
		queries.NewDonationQueries,
		queries.NewInventoryQueries,
		queries.NewEligibilityQueries,
		queries.NewNotificationQueries,
		queries.NewEventQueries,
		queries.NewHospitalQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
