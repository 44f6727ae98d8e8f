package blog

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the blog routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/blog/posts", h.List)
	e.GET("/api/blog/posts/:slug", h.Get)
}
