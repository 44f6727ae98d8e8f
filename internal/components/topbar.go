package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{"/marketplace", "Marketplace"},
	{"/pricing", "Pricing"},
	{"/artifacts", "Artifacts"},
	{"/help", "Help"},
	{"/contact", "Contact"},
}

// Topbar renders the site navigation. Signed-in visitors get a
// dashboard link instead of the registration call to action.
func Topbar(signedIn bool, dashboardURL, registerURL string) g.Node {
	cta := PrimaryLink(registerURL, "Get started")
	if signedIn {
		cta = PrimaryLink(dashboardURL, "Dashboard")
	}

	return Header(
		Class("sticky top-0 z-10 border-b border-base-200 bg-base-100/90 backdrop-blur"),
		Div(
			Class("container flex items-center justify-between py-3"),
			Logo(),
			Nav(
				Class("hidden md:flex items-center gap-6"),
				g.Map(navLinks, func(l navLink) g.Node {
					return A(
						Href(l.Href),
						Class("text-sm text-base-content/80 hover:text-base-content"),
						g.Text(l.Label),
					)
				}),
			),
			Div(
				Class("flex items-center gap-2"),
				cta,
			),
		),
	)
}
