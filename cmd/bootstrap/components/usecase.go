package components

import (
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

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
		commands.NewBookingCommands,
		commands.NewCustomerCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(catalog queries.RoomReadStore, availability queries.AvailabilityReadStore, cfg config.Config) queries.RoomQueries {
			return queries.NewRoomQueries(catalog, availability, cfg.Search.RecommendationOffsetDays)
		},
		queries.NewCustomerQueries,
		queries.NewReservationQueries,
	),
)
