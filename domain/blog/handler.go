package blog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the blog
type Handler struct {
	svc *Service
}

// NewHandler creates a new blog handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns published posts
// GET /api/blog/posts
func (h *Handler) List(c echo.Context) error {
	posts := h.svc.List(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{"posts": posts})
}

// Get returns one post by slug
// GET /api/blog/posts/:slug
func (h *Handler) Get(c echo.Context) error {
	post, err := h.svc.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}
