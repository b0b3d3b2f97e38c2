package tracking

import "go.uber.org/fx"

// Module provides activity tracking functionality
var Module = fx.Module("tracking",
	fx.Provide(
		NewRepository,
		NewService,
	),
)
