package components

import (
	"stayspots/internal/pkg/clock"
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSpotCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSpotQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
	),
)
