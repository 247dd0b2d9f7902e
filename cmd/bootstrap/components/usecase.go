package components

import (
	"webmall/internal/pkg/clock"
	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProductCommands,
		commands.NewCategoryCommands,
		commands.NewCouponCommands,
		commands.NewInventoryCommands,
		commands.NewOrderCommands,
		commands.NewMessageCommands,
		commands.NewBannerCommands,
		// The auth middleware only needs the token-to-user half.
		func(a commands.AuthCommands) commands.Authenticator { return a },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewCategoryQueries,
		queries.NewCouponQueries,
		queries.NewInventoryQueries,
		queries.NewOrderQueries,
		queries.NewMessageQueries,
		queries.NewBannerQueries,
		queries.NewReportQueries,
	),
)
