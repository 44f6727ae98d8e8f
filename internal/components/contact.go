package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactForm renders the contact-sales form. Validation happens on
// submit in the browser and again on the server; the data attributes
// carry the same messages the API returns so both paths read alike.
func ContactForm(prefillFirstName, prefillEmail, source string) g.Node {
	return Section(
		Class("container py-16 max-w-xl"),
		SectionTitle("Talk to sales", "Tell us about your team and we'll get back within one business day."),
		Form(
			ID("contact-form"),
			Method("post"),
			Action("/api/contact"),
			Class("space-y-4"),
			Input(Type("hidden"), Name("source"), Value(source)),

			Div(
				Class("grid gap-4 md:grid-cols-2"),
				formField("firstName", "First name", "text", prefillFirstName, true),
				formField("lastName", "Last name", "text", "", true),
			),
			formField("email", "Work email", "email", prefillEmail, true),
			formField("company", "Company", "text", "", true),
			formField("phone", "Phone (optional)", "tel", "", false),

			Div(
				Label(For("message"), Class("block text-sm font-medium"), g.Text("Message")),
				Textarea(
					ID("message"),
					Name("message"),
					Rows("5"),
					Required(),
					Class("textarea textarea-bordered w-full mt-1"),
					Placeholder("What would you like your AI employees to do?"),
				),
				P(Class("field-error text-sm text-error mt-1 hidden"), g.Attr("data-field", "message")),
			),

			Button(Type("submit"), Class("btn btn-primary w-full"), g.Text("Send message")),
		),
		Script(Src("/static/js/contact-form.js")),
	)
}

func formField(name, label, inputType, value string, required bool) g.Node {
	input := Input(
		ID(name),
		Name(name),
		Type(inputType),
		Value(value),
		Class("input input-bordered w-full mt-1"),
	)
	if required {
		input = Input(
			ID(name),
			Name(name),
			Type(inputType),
			Value(value),
			Required(),
			Class("input input-bordered w-full mt-1"),
		)
	}

	return Div(
		Label(For(name), Class("block text-sm font-medium"), g.Text(label)),
		input,
		P(Class("field-error text-sm text-error mt-1 hidden"), g.Attr("data-field", name)),
	)
}
