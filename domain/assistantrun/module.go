package assistantrun

import "go.uber.org/fx"

// Module provides the assistant run endpoint
var Module = fx.Module("assistantrun",
	fx.Provide(
		NewDriver,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
