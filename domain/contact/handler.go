package contact

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

// Handler handles HTTP requests for contact submissions
type Handler struct {
	svc *Service
}

// NewHandler creates a new contact handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit accepts a contact-sales submission
// POST /api/contact
func (h *Handler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	resp, err := h.svc.Submit(c.Request().Context(), &req, auth.GetUser(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}
