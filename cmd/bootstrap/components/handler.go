package components

import (
	"jetski-rentals/internal/handler"
	"jetski-rentals/internal/handler/api"
	"jetski-rentals/internal/handler/middleware"
	"jetski-rentals/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRidesHandler,
		api.NewBookingHandler,
		api.NewWeatherHandler,
		api.NewContactHandler,
		api.NewQuizHandler,
		api.NewAdminHandler,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
