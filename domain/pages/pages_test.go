package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/help"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

func newTestHandler() *Handler {
	cfg := &config.Config{}
	cfg.Auth.DashboardURL = "http://localhost:3000/dashboard"
	cfg.Auth.RegisterURL = "http://localhost:3000/register"

	return NewHandler(cfg, nil, nil, nil, help.NewService())
}

func renderPage(t *testing.T, handle echo.HandlerFunc, target string, user *auth.SessionUser) string {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("session_user", user)
	}

	require.NoError(t, handle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestLandingPage(t *testing.T) {
	h := newTestHandler()
	body := renderPage(t, h.Landing, "/", nil)

	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Isn&#39;t Human")
	assert.Contains(t, body, "Get started")
}

func TestTopbarReflectsSession(t *testing.T) {
	h := newTestHandler()

	anon := renderPage(t, h.About, "/about", nil)
	assert.Contains(t, anon, "http://localhost:3000/register")
	assert.NotContains(t, anon, "http://localhost:3000/dashboard")

	signedIn := renderPage(t, h.About, "/about", &auth.SessionUser{
		ID:    "u-1",
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})
	assert.Contains(t, signedIn, "http://localhost:3000/dashboard")
}

func TestContactPagePrefillsFromSession(t *testing.T) {
	h := newTestHandler()

	body := renderPage(t, h.Contact, "/contact", &auth.SessionUser{
		ID:    "u-1",
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})

	assert.Contains(t, body, `value="Ada"`)
	assert.Contains(t, body, `value="ada@example.com"`)
	assert.Contains(t, body, `value="contact-sales"`)
}

func TestHelpPageRendersArticles(t *testing.T) {
	h := newTestHandler()
	body := renderPage(t, h.Help, "/help?query=refund", nil)

	assert.Contains(t, body, "refund")
	// non-matching articles are filtered out server-side
	assert.False(t, strings.Contains(body, "What is an AI employee"), "unrelated article should not render")
}

func TestFilterFromQuery(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/marketplace?query=sales&category=support&sort=popular", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	f := filterFromQuery(c)
	assert.Equal(t, listing.FilterState{
		Query:    "sales",
		Category: "support",
		Sort:     listing.SortPopular,
	}, f)
}

func TestPrefill(t *testing.T) {
	first, email := prefill(nil)
	assert.Empty(t, first)
	assert.Empty(t, email)

	first, email = prefill(&auth.SessionUser{Name: "Grace Hopper", Email: "grace@example.com"})
	assert.Equal(t, "Grace", first)
	assert.Equal(t, "grace@example.com", email)

	first, _ = prefill(&auth.SessionUser{Name: "Prince"})
	assert.Equal(t, "Prince", first)
}
