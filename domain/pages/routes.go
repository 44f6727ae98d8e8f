package pages

import (
	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

// RegisterRoutes registers the HTML page routes. All pages are public;
// OptionalAuth only lets signed-in visitors see their session reflected
// in the topbar and pre-filled forms.
func RegisterRoutes(e *echo.Echo, h *Handler, authMiddleware *auth.Middleware) {
	pages := e.Group("", authMiddleware.OptionalAuth())

	pages.GET("/", h.Landing)
	pages.GET("/pricing", h.Pricing)
	pages.GET("/marketplace", h.Marketplace)
	pages.GET("/artifacts", h.Artifacts)
	pages.GET("/help", h.Help)
	pages.GET("/contact", h.Contact)
	pages.GET("/about", h.About)
	pages.GET("/careers", h.Careers)
	pages.GET("/security", h.Security)
	pages.GET("/demo", h.Demo)
}
