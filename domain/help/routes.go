package help

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the help center routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/help/articles", h.Search)
}
