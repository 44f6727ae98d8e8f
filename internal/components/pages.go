package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/artifacts"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/help"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/marketplace"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/pricing"
)

// PricingSection renders the pricing cards
func PricingSection(plans []pricing.PlanDTO) g.Node {
	return Section(
		Class("container py-16"),
		SectionTitle("Simple pricing per role", "Every plan includes onboarding, integrations, and human handoff."),
		Div(
			Class("grid gap-6 md:grid-cols-3"),
			g.Map(plans, func(p pricing.PlanDTO) g.Node {
				cardClass := "rounded-xl border border-base-200 p-8 flex flex-col"
				if p.Highlighted {
					cardClass = "rounded-xl border-2 border-primary p-8 flex flex-col"
				}
				return Div(
					Class(cardClass),
					H3(Class("font-semibold text-lg"), g.Text(p.Name)),
					P(Class("mt-1 text-sm text-base-content/70"), g.Text(p.Description)),
					P(
						Class("mt-4"),
						Span(Class("text-4xl font-extrabold"), g.Text(fmt.Sprintf("$%.0f", p.PriceMonthly))),
						Span(Class("text-base-content/60"), g.Text("/month")),
					),
					Ul(
						Class("mt-6 space-y-2 flex-1"),
						g.Map(p.Features, func(f string) g.Node {
							return Li(Class("text-sm text-base-content/80"), g.Text(f))
						}),
					),
					Div(Class("mt-8"), PrimaryLink("/contact?source=pricing-page", "Choose "+p.Name)),
				)
			}),
		),
	)
}

// MarketplaceSection renders the agent grid with the search controls
func MarketplaceSection(agents []marketplace.AgentDTO, query, category string) g.Node {
	return Section(
		Class("container py-16"),
		SectionTitle("The AI employee marketplace", "Search by role, skill, or category."),
		searchBar("/marketplace", query, category,
			[]string{"all", "sales", "support", "analytics", "operations"}),
		g.If(len(agents) == 0, emptyState("No agents match your search.")),
		Div(
			Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
			g.Map(agents, func(a marketplace.AgentDTO) g.Node {
				return Div(
					Class("rounded-xl border border-base-200 p-6"),
					H3(Class("font-semibold"), g.Text(a.Name)),
					P(Class("text-sm text-base-content/60"), g.Text(a.Headline)),
					P(Class("mt-2 text-sm text-base-content/80"), g.Text(a.Description)),
					Div(
						Class("mt-4 flex flex-wrap gap-1"),
						g.Map(a.Skills, func(s string) g.Node {
							return Span(Class("rounded-full bg-base-200 px-2 py-0.5 text-xs"), g.Text(s))
						}),
					),
					Div(
						Class("mt-4 flex items-center justify-between"),
						Span(Class("font-semibold"), g.Text(fmt.Sprintf("$%.0f/mo", a.PriceMonthly))),
						Span(Class("text-sm text-base-content/60"), g.Text(fmt.Sprintf("%d hires", a.Hires))),
					),
				)
			}),
		),
	)
}

// ArtifactsSection renders the public artifact gallery
func ArtifactsSection(items []artifacts.ArtifactDTO, query, category string) g.Node {
	return Section(
		Class("container py-16"),
		SectionTitle("Artifact gallery", "Real output produced by AI employees, published by their teams."),
		searchBar("/artifacts", query, category,
			[]string{"all", "reports", "dashboards", "sales", "finance", "general"}),
		g.If(len(items) == 0, emptyState("No artifacts found.")),
		Div(
			Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
			g.Map(items, func(a artifacts.ArtifactDTO) g.Node {
				return Div(
					Class("rounded-xl border border-base-200 p-6"),
					H3(Class("font-semibold"), g.Text(a.Title)),
					P(Class("mt-2 text-sm text-base-content/80"), g.Text(a.Description)),
					Div(
						Class("mt-4 flex items-center justify-between text-sm text-base-content/60"),
						Span(g.Text(a.AuthorName)),
						Span(g.Text(fmt.Sprintf("%d views · %d likes", a.Views, a.Likes))),
					),
				)
			}),
		),
	)
}

// HelpSection renders the FAQ accordion
func HelpSection(articles []help.Article, categories []string, query, category string) g.Node {
	return Section(
		Class("container py-16 max-w-3xl"),
		SectionTitle("Help center", "Answers to common questions about hiring and running AI employees."),
		searchBar("/help", query, category, append([]string{"all"}, categories...)),
		g.If(len(articles) == 0, emptyState("No articles match your search.")),
		Div(
			Class("space-y-3"),
			g.Map(articles, func(a help.Article) g.Node {
				return Details(
					Class("rounded-xl border border-base-200 p-4"),
					Summary(Class("font-medium cursor-pointer"), g.Text(a.Question)),
					P(Class("mt-2 text-sm text-base-content/80"), g.Text(a.Answer)),
				)
			}),
		),
	)
}

func searchBar(action, query, category string, categories []string) g.Node {
	return Form(
		Method("get"),
		Action(action),
		Class("mb-10 flex flex-col md:flex-row gap-3 justify-center"),
		Input(
			Type("search"),
			Name("query"),
			Value(query),
			Placeholder("Search..."),
			Class("input input-bordered w-full md:w-80"),
		),
		Select(
			Name("category"),
			Class("select select-bordered"),
			g.Map(categories, func(c string) g.Node {
				return Option(
					Value(c),
					g.If(c == category, Selected()),
					g.Text(c),
				)
			}),
		),
		Button(Type("submit"), Class("btn btn-primary"), g.Text("Search")),
	)
}

func emptyState(message string) g.Node {
	return P(
		Class("text-center text-base-content/60 py-12"),
		g.Text(message),
	)
}
