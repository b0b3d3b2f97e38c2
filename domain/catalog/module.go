package catalog

import "go.uber.org/fx"

// Module provides catalog functionality
var Module = fx.Module("catalog",
	fx.Provide(
		NewRepository,
	),
)
