package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type feature struct {
	Title       string
	Description string
}

var features = []feature{
	{"Hire in minutes", "Pick an agent from the marketplace, connect your tools, and it starts working the same day."},
	{"Always on", "AI employees work around the clock across time zones, with no queues and no backlog."},
	{"Human handoff", "Escalation rules route edge cases to your team with full context attached."},
	{"Pay per role", "Flat monthly pricing per agent. No seats, no usage surprises."},
	{"Your data stays yours", "Agents only touch the connections you grant, and access is revocable per agent."},
	{"Proven playbooks", "Every agent ships with a track record you can inspect in the artifact gallery."},
}

func Features() g.Node {
	return Section(
		ID("features"),
		Class("container py-16"),
		SectionTitle("Why teams hire AI employees", "Everything you expect from a great hire, without the ramp-up time."),
		Div(
			Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
			g.Map(features, func(f feature) g.Node {
				return Div(
					Class("rounded-xl border border-base-200 p-6"),
					H3(Class("font-semibold"), g.Text(f.Title)),
					P(Class("mt-2 text-sm text-base-content/70"), g.Text(f.Description)),
				)
			}),
		),
	)
}

func CTA() g.Node {
	return Section(
		Class("container py-16"),
		Div(
			Class("rounded-2xl bg-primary/5 border border-primary/10 p-10 text-center"),
			H2(Class("text-2xl font-extrabold"), g.Text("Ready to meet your new team?")),
			P(Class("mt-2 text-base-content/70"), g.Text("Start with one agent on the Starter plan, or talk to sales about an enterprise rollout.")),
			Div(
				Class("mt-6 inline-flex gap-3"),
				PrimaryLink("/pricing", "See pricing"),
				GhostLink("/contact", "Talk to sales"),
			),
		),
	)
}
