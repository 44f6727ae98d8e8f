package pages

import (
	"net/http"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/labstack/echo/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/artifacts"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/help"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/marketplace"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/pricing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/components"
	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

// Handler renders the server-side marketing pages. Data comes from the
// same services the JSON API uses, so page content and API responses
// never drift apart.
type Handler struct {
	cfg         *config.Config
	pricing     *pricing.Service
	marketplace *marketplace.Service
	artifacts   *artifacts.Service
	help        *help.Service
}

func NewHandler(
	cfg *config.Config,
	pricingSvc *pricing.Service,
	marketplaceSvc *marketplace.Service,
	artifactsSvc *artifacts.Service,
	helpSvc *help.Service,
) *Handler {
	return &Handler{
		cfg:         cfg,
		pricing:     pricingSvc,
		marketplace: marketplaceSvc,
		artifacts:   artifactsSvc,
		help:        helpSvc,
	}
}

func (h *Handler) render(c echo.Context, config components.PageConfig, content ...g.Node) error {
	user := auth.GetUser(c)

	body := []g.Node{
		components.Topbar(user != nil, h.cfg.Auth.DashboardURL, h.cfg.Auth.RegisterURL),
	}
	body = append(body, content...)
	body = append(body, components.PageFooter())

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return components.Layout(config, body...).Render(c.Response())
}

// Landing renders the home page.
// GET /
func (h *Handler) Landing(c echo.Context) error {
	return h.render(c, components.PageConfig{},
		components.Hero(),
		components.Features(),
		components.CTA(),
	)
}

// Pricing renders the pricing page.
// GET /pricing
func (h *Handler) Pricing(c echo.Context) error {
	plans := h.pricing.ListPlans(c.Request().Context())

	return h.render(c, components.PageConfig{
		Title:       "Pricing - AGI Agent Automation",
		Description: "Simple pricing for teams of every size. Start free, upgrade when your AI employees do.",
	},
		components.PricingSection(plans),
		components.CTA(),
	)
}

// Marketplace renders the agent marketplace page.
// GET /marketplace?query=&category=&sort=
func (h *Handler) Marketplace(c echo.Context) error {
	f := filterFromQuery(c)
	agents := h.marketplace.List(c.Request().Context(), f)

	return h.render(c, components.PageConfig{
		Title:       "Marketplace - AGI Agent Automation",
		Description: "Browse AI employees for sales, support, analytics, and operations.",
	},
		components.MarketplaceSection(agents, f.Query, f.Category),
	)
}

// Artifacts renders the public artifact gallery.
// GET /artifacts?query=&category=&sort=
func (h *Handler) Artifacts(c echo.Context) error {
	f := filterFromQuery(c)
	items := h.artifacts.List(c.Request().Context(), f)

	return h.render(c, components.PageConfig{
		Title:       "Artifacts - AGI Agent Automation",
		Description: "Reports, dashboards, and documents produced by AI employees.",
	},
		components.ArtifactsSection(items, f.Query, f.Category),
	)
}

// Help renders the help center.
// GET /help?query=&category=
func (h *Handler) Help(c echo.Context) error {
	f := filterFromQuery(c)
	articles := h.help.Search(f)

	return h.render(c, components.PageConfig{
		Title:       "Help Center - AGI Agent Automation",
		Description: "Answers to common questions about hiring and managing AI employees.",
	},
		components.HelpSection(articles, h.help.Categories(), f.Query, f.Category),
	)
}

// Contact renders the contact-sales page. Signed-in visitors get the
// form pre-filled from their session.
// GET /contact
func (h *Handler) Contact(c echo.Context) error {
	firstName, email := prefill(auth.GetUser(c))

	return h.render(c, components.PageConfig{
		Title:       "Contact Sales - AGI Agent Automation",
		Description: "Talk to our team about deploying AI employees at your company.",
	},
		components.ContactForm(firstName, email, "contact-sales"),
	)
}

// About renders the company page.
// GET /about
func (h *Handler) About(c echo.Context) error {
	return h.render(c, components.PageConfig{
		Title: "About - AGI Agent Automation",
	},
		components.AboutSection(),
	)
}

// Careers renders the open roles page.
// GET /careers
func (h *Handler) Careers(c echo.Context) error {
	return h.render(c, components.PageConfig{
		Title: "Careers - AGI Agent Automation",
	},
		components.CareersSection(),
	)
}

// Security renders the security overview page.
// GET /security
func (h *Handler) Security(c echo.Context) error {
	return h.render(c, components.PageConfig{
		Title: "Security - AGI Agent Automation",
	},
		components.SecuritySection(),
	)
}

// Demo renders the demo request page.
// GET /demo
func (h *Handler) Demo(c echo.Context) error {
	firstName, email := prefill(auth.GetUser(c))

	return h.render(c, components.PageConfig{
		Title: "Request a Demo - AGI Agent Automation",
	},
		components.DemoSection(firstName, email),
	)
}

func filterFromQuery(c echo.Context) listing.FilterState {
	return listing.FilterState{
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
		Sort:     listing.SortKey(c.QueryParam("sort")),
	}
}

func prefill(user *auth.SessionUser) (firstName, email string) {
	if user == nil {
		return "", ""
	}
	firstName, _, _ = strings.Cut(user.Name, " ")
	return firstName, user.Email
}
