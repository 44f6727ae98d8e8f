package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type footerColumn struct {
	Title string
	Links []navLink
}

var footerColumns = []footerColumn{
	{
		Title: "Product",
		Links: []navLink{
			{"/marketplace", "Marketplace"},
			{"/pricing", "Pricing"},
			{"/artifacts", "Artifact gallery"},
			{"/demo", "Live demo"},
		},
	},
	{
		Title: "Company",
		Links: []navLink{
			{"/about", "About"},
			{"/careers", "Careers"},
			{"/security", "Security"},
		},
	},
	{
		Title: "Support",
		Links: []navLink{
			{"/help", "Help center"},
			{"/contact", "Contact sales"},
		},
	},
}

func PageFooter() g.Node {
	return Footer(
		Class("border-t border-base-200 mt-20"),
		Div(
			Class("container py-12 grid gap-8 md:grid-cols-4"),
			Div(
				Logo(),
				P(
					Class("mt-3 text-sm text-base-content/60"),
					g.Text("The marketplace for AI employees."),
				),
			),
			g.Map(footerColumns, func(col footerColumn) g.Node {
				return Div(
					H3(Class("text-sm font-semibold mb-3"), g.Text(col.Title)),
					Ul(
						Class("space-y-2"),
						g.Map(col.Links, func(l navLink) g.Node {
							return Li(A(
								Href(l.Href),
								Class("text-sm text-base-content/60 hover:text-base-content"),
								g.Text(l.Label),
							))
						}),
					),
				)
			}),
		),
		Div(
			Class("container py-6 border-t border-base-200 text-sm text-base-content/50"),
			g.Text(fmt.Sprintf("© %d AGI Agent Automation. All rights reserved.", time.Now().Year())),
		),
	)
}
