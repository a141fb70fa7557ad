package bootstrap

import (
	"jetski-rentals/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BackendConfig { return cfg.Backend },
		func(cfg config.Config) config.WeatherConfig { return cfg.Weather },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	),
)
