package tools

import "go.uber.org/fx"

// Module provides the assistant tool registry
var Module = fx.Module("tools",
	fx.Provide(
		NewRegistry,
	),
)
