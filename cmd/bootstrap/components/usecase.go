package components

import (
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/usecase"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
	),
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCanteenQueries,
		queries.NewStudentQueries,
		queries.NewRestrictionQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewCanteenCommands,
		commands.NewRestrictionCommands,
		commands.NewSweepCommands,
	),
)
