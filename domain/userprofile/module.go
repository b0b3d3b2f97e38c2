// Package userprofile holds the user profile read/write layer.
package userprofile

import "go.uber.org/fx"

// Module provides user profile functionality
var Module = fx.Module("userprofile",
	fx.Provide(
		NewRepository,
	),
)
