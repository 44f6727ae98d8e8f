package contact

import (
	"go.uber.org/fx"
)

// Module provides the contact-sales domain
var Module = fx.Module("contact",
	fx.Provide(NewRepository),
	fx.Provide(NewSender),
	fx.Provide(NewService),
	fx.Provide(NewRateLimiter),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
