package artifacts

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the artifact gallery routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/artifacts", h.List)
}
