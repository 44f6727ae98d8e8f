package pricing

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the pricing routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/pricing/plans", h.ListPlans)
}
