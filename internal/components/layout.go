package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "AGI Agent Automation - Hire AI Employees"
	}

	if config.Description == "" {
		config.Description = "The marketplace for AI employees. Hire autonomous agents for sales, support, analytics, and operations in minutes."
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.jpg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.png")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),
			),
		),
	})
}
