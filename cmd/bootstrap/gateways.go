package bootstrap

import (
	"jetski-rentals/internal/infra/backendapi"
	"jetski-rentals/internal/infra/weatherapi"
	"jetski-rentals/internal/usecase/commands"
	"jetski-rentals/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule wires the HTTP clients for the reservations backend and
// the weather provider, bound to the interfaces the use cases consume.
var GatewayModule = fx.Module("gateways",
	fx.Provide(
		fx.Annotate(
			backendapi.NewClient,
			fx.As(new(queries.BookingSource)),
			fx.As(new(queries.QuizSource)),
			fx.As(new(commands.BookingGateway)),
			fx.As(new(commands.ContactGateway)),
			fx.As(new(commands.QuizGateway)),
		),
		fx.Annotate(
			weatherapi.NewClient,
			fx.As(new(queries.WeatherSource)),
		),
	),
)
