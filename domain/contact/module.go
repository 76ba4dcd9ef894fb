package contact

import (
	"go.uber.org/fx"
)

// Module provides the form registry, its sweep task and the HTTP surface.
var Module = fx.Module("contact",
	fx.Provide(
		NewRegistry,
		NewHandler,
	),
	fx.Invoke(RegisterSweep),
	fx.Invoke(RegisterRoutes),
)
