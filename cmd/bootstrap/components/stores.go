package components

import (
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each store is a single shared instance per process; the usecase layers
// see it only through their own interfaces.
var StoreModule = fx.Module("stores",
	fx.Provide(
		fx.Annotate(
			memstore.NewRoomCatalog,
			fx.As(new(commands.RoomCatalog)),
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			memstore.NewCustomerDirectory,
			fx.As(new(commands.CustomerDirectory)),
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			memstore.NewReservationLedger,
			fx.As(new(commands.ReservationLedger)),
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.AvailabilityReadStore)),
		),
	),
)
