package components

import (
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewReservationCommands,
		queries.NewReservationQueries,
		queries.NewVenueQueries,
	),
)
