package site

import (
	"go.uber.org/fx"
)

// Module serves the marketing page.
var Module = fx.Module("site",
	fx.Provide(
		NewContent,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
