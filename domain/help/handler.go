package help

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

// Handler handles HTTP requests for the help center
type Handler struct {
	svc *Service
}

// NewHandler creates a new help handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search returns help articles matching the filter state
// GET /api/help/articles?query=&category=
func (h *Handler) Search(c echo.Context) error {
	f := listing.FilterState{
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
	}

	return c.JSON(http.StatusOK, map[string]any{
		"articles":   h.svc.Search(f),
		"categories": h.svc.Categories(),
	})
}
