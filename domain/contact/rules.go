package contact

import (
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/forms"
)

// Rules is the declared validation for the contact-sales form
var Rules = forms.RuleSet{
	{Field: "firstName", Check: forms.Required("First name")},
	{Field: "lastName", Check: forms.Required("Last name")},
	{Field: "email", Check: forms.Required("Email")},
	{Field: "email", Check: forms.Email()},
	{Field: "company", Check: forms.Required("Company")},
	{Field: "message", Check: forms.Required("Message")},
	{Field: "message", Check: forms.MinLength("Message", 10)},
	{Field: "phone", Check: forms.OptionalPhone()},
}

// Values maps a submit request onto the validator's field set
func (r *SubmitRequest) Values() forms.Values {
	return forms.Values{
		"firstName": r.FirstName,
		"lastName":  r.LastName,
		"email":     r.Email,
		"company":   r.Company,
		"phone":     r.Phone,
		"message":   r.Message,
	}
}
