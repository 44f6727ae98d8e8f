package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return A(
		Href("/"),
		Class("flex items-center gap-2"),
		Span(
			Class("font-bold text-xl"),
			g.Text("AGI Agent Automation"),
		),
	)
}

// SectionTitle renders the standard heading block used at the top of
// every marketing section.
func SectionTitle(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-12"),
		H2(Class("text-3xl font-extrabold tracking-tight"), g.Text(title)),
		g.If(subtitle != "",
			P(Class("mt-3 text-base-content/70 max-w-2xl mx-auto"), g.Text(subtitle)),
		),
	)
}

// PrimaryLink is the filled call-to-action button
func PrimaryLink(href, label string) g.Node {
	return A(Href(href), Class("btn btn-primary"), g.Text(label))
}

// GhostLink is the secondary, borderless button
func GhostLink(href, label string) g.Node {
	return A(Href(href), Class("btn btn-ghost"), g.Text(label))
}
