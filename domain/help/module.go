package help

import (
	"go.uber.org/fx"
)

// Module provides the help center domain
var Module = fx.Module("help",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
