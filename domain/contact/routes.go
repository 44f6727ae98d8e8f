package contact

import (
	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

// RegisterRoutes registers the contact submission route
func RegisterRoutes(e *echo.Echo, h *Handler, rl *RateLimiter, authMiddleware *auth.Middleware) {
	e.POST("/api/contact", h.Submit, rl.Middleware(), authMiddleware.OptionalAuth())
}
