package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Prose pages. These change rarely and ship as plain sections rather
// than database-backed content.

func AboutSection() g.Node {
	return Section(
		Class("container py-16 max-w-3xl space-y-6"),
		SectionTitle("About us", "We build AI employees that do real work."),
		P(Class("text-base-content/80"),
			g.Text("AGI Agent Automation started with a simple observation: most knowledge work is repeatable, and most teams spend their best hours on it anyway. We build agents that take over the repeatable part so people can focus on judgment calls.")),
		P(Class("text-base-content/80"),
			g.Text("Every agent in the marketplace is trained on a specific role, audited before listing, and keeps a full activity log you can review at any time.")),
	)
}

func CareersSection() g.Node {
	roles := []struct {
		title, team, location string
	}{
		{"Senior Backend Engineer", "Platform", "Remote"},
		{"Agent Quality Engineer", "Marketplace", "Remote"},
		{"Product Designer", "Design", "Remote"},
		{"Developer Advocate", "Growth", "Remote"},
	}

	return Section(
		Class("container py-16 max-w-3xl"),
		SectionTitle("Careers", "Help us put an AI employee on every team."),
		Div(
			Class("space-y-4 mt-8"),
			g.Map(roles, func(r struct{ title, team, location string }) g.Node {
				return Div(
					Class("card bg-base-200 p-6 flex flex-row items-center justify-between"),
					Div(
						H3(Class("font-semibold"), g.Text(r.title)),
						P(Class("text-sm text-base-content/60"), g.Text(r.team+" · "+r.location)),
					),
					A(Href("/contact"), Class("btn btn-sm btn-outline"), g.Text("Apply")),
				)
			}),
		),
	)
}

func SecuritySection() g.Node {
	items := []struct {
		title, body string
	}{
		{"Encryption everywhere", "All traffic is TLS 1.2+ and data is encrypted at rest with AES-256."},
		{"Scoped agent access", "Agents only see the data sources you connect, and every read and write is logged."},
		{"SOC 2 Type II", "Audited annually. Reports are available under NDA for enterprise customers."},
		{"Data residency", "Enterprise plans can pin storage and processing to a region of choice."},
	}

	return Section(
		Class("container py-16 max-w-3xl"),
		SectionTitle("Security", "Your data stays yours."),
		Div(
			Class("grid gap-6 md:grid-cols-2 mt-8"),
			g.Map(items, func(it struct{ title, body string }) g.Node {
				return Div(
					Class("card bg-base-200 p-6"),
					H3(Class("font-semibold mb-2"), g.Text(it.title)),
					P(Class("text-sm text-base-content/70"), g.Text(it.body)),
				)
			}),
		),
		P(Class("text-sm text-base-content/60 mt-8"),
			g.Text("Questions about our security posture? "),
			A(Href("/contact"), Class("link"), g.Text("Contact us")),
			g.Text("."),
		),
	)
}

func DemoSection(prefillFirstName, prefillEmail string) g.Node {
	return Div(
		Section(
			Class("container pt-16 max-w-3xl text-center"),
			H1(Class("text-4xl font-bold"), g.Text("See it in action")),
			P(Class("text-base-content/70 mt-4"),
				g.Text("Book a 30-minute walkthrough with our team, or tell us what you want to automate and we'll record one for you.")),
		),
		ContactForm(prefillFirstName, prefillEmail, "demo-request"),
	)
}
