package checkout

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

// Handler handles HTTP requests for checkout
type Handler struct {
	svc *Service
}

// NewHandler creates a new checkout handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CreateSession starts a checkout session for the signed-in user
// POST /api/checkout/session
func (h *Handler) CreateSession(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.ErrUnauthorized
	}

	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	session, err := h.svc.CreateSession(c.Request().Context(), &req, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, session)
}
