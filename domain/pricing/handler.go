package pricing

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for pricing plans
type Handler struct {
	svc *Service
}

// NewHandler creates a new pricing handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListPlans returns the plans for the pricing page
// GET /api/pricing/plans
func (h *Handler) ListPlans(c echo.Context) error {
	plans := h.svc.ListPlans(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{"plans": plans})
}
