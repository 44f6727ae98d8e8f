package marketplace

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

// Handler handles HTTP requests for the marketplace
type Handler struct {
	svc *Service
}

// NewHandler creates a new marketplace handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns agent listings matching the filter state
// GET /api/marketplace/agents?query=&category=&sort=
func (h *Handler) List(c echo.Context) error {
	f := listing.FilterState{
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
		Sort:     listing.SortKey(c.QueryParam("sort")),
	}

	agents := h.svc.List(c.Request().Context(), f)
	return c.JSON(http.StatusOK, map[string]any{"agents": agents})
}

// Get returns a single agent listing
// GET /api/marketplace/agents/:slug
func (h *Handler) Get(c echo.Context) error {
	agent, err := h.svc.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agent)
}
