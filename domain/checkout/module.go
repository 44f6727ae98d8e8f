package checkout

import (
	"go.uber.org/fx"
)

// Module provides the checkout domain
var Module = fx.Module("checkout",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
