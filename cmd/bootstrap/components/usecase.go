package components

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

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
	booking.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPropertyQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewAuthUseCase,
		commands.NewPropertyCommands,
		commands.NewBookingCommands,
	),
)
