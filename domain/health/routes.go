package health

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)
}
