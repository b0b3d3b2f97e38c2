package threads

import "go.uber.org/fx"

// Module provides thread binding functionality
var Module = fx.Module("threads",
	fx.Provide(
		NewRepository,
		NewService,
	),
)
