package pages

import (
	"go.uber.org/fx"
)

// Module provides the server-rendered marketing pages
var Module = fx.Module("pages",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
