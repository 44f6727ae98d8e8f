package artifacts

import (
	"go.uber.org/fx"
)

// Module provides the artifact gallery domain
var Module = fx.Module("artifacts",
	fx.Provide(NewRepository),
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
