package marketplace

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the marketplace routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/marketplace/agents", h.List)
	e.GET("/api/marketplace/agents/:slug", h.Get)
}
