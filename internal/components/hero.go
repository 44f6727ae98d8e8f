package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Div(
		Class("relative overflow-hidden"),
		ID("hero"),

		Div(
			Class("container flex items-center justify-center pt-20 pb-20 md:pt-28 md:pb-28"),
			Div(
				Class("max-w-3xl text-center"),

				P(
					Class("text-4xl md:text-5xl leading-tight font-extrabold tracking-tight"),
					g.Text("Your Next Hire"),
					Br(),
					Span(
						Class("bg-linear-to-r from-secondary via-accent to-primary bg-clip-text text-transparent"),
						g.Text("Isn't Human"),
					),
				),

				P(
					Class("mt-5 text-base-content/80 text-lg"),
					g.Text("Hire AI employees for sales, support, analytics, and operations. They onboard in minutes, work around the clock, and cost a fraction of a salary."),
				),

				Div(
					Class("mt-8 inline-flex justify-center gap-3"),
					PrimaryLink("/marketplace", "Browse the marketplace"),
					GhostLink("/demo", "Watch a demo"),
				),
			),
		),
	)
}
