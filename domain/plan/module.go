package plan

import "go.uber.org/fx"

// Module provides weekly plan functionality
var Module = fx.Module("plan",
	fx.Provide(
		NewRepository,
		NewService,
	),
)
