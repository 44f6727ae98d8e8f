package marketplace

import (
	"go.uber.org/fx"
)

// Module provides the marketplace domain
var Module = fx.Module("marketplace",
	fx.Provide(NewRepository),
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
