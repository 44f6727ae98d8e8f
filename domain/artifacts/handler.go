package artifacts

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

// Handler handles HTTP requests for the artifact gallery
type Handler struct {
	svc *Service
}

// NewHandler creates a new artifact handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns public artifacts matching the filter state
// GET /api/artifacts?query=&category=&sort=
func (h *Handler) List(c echo.Context) error {
	f := listing.FilterState{
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
		Sort:     listing.SortKey(c.QueryParam("sort")),
	}

	items := h.svc.List(c.Request().Context(), f)
	return c.JSON(http.StatusOK, map[string]any{"artifacts": items})
}
