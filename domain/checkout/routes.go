package checkout

import (
	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

// RegisterRoutes registers the checkout routes
func RegisterRoutes(e *echo.Echo, h *Handler, authMiddleware *auth.Middleware) {
	e.POST("/api/checkout/session", h.CreateSession, authMiddleware.RequireAuth())
}
