package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// contactRules mirrors the contact-sales form declaration
func contactRules() RuleSet {
	return RuleSet{
		{Field: "firstName", Check: Required("First name")},
		{Field: "lastName", Check: Required("Last name")},
		{Field: "email", Check: Required("Email")},
		{Field: "email", Check: Email()},
		{Field: "company", Check: Required("Company")},
		{Field: "message", Check: Required("Message")},
		{Field: "message", Check: MinLength("Message", 10)},
		{Field: "phone", Check: OptionalPhone()},
	}
}

func TestValidate_RequiredFieldScenario(t *testing.T) {
	errors := contactRules().Validate(Values{
		"firstName": "",
		"lastName":  "Doe",
		"email":     "a@b.com",
		"company":   "Acme",
		"message":   "short",
	})

	assert.Equal(t, map[string]string{
		"firstName": "First name is required",
		"message":   "Message must be at least 10 characters long",
	}, errors)
}

func TestValidate_ValidSubmission(t *testing.T) {
	errors := contactRules().Validate(Values{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@acme.com",
		"company":   "Acme",
		"message":   "We would like a demo of the sales agents.",
	})

	assert.Empty(t, errors)
}

func TestValidate_Idempotent(t *testing.T) {
	values := Values{
		"firstName": "",
		"lastName":  "Doe",
		"email":     "not-an-email",
		"company":   "",
		"message":   "hi",
	}

	first := contactRules().Validate(values)
	second := contactRules().Validate(values)

	assert.Equal(t, first, second)
}

func TestRequired(t *testing.T) {
	check := Required("Company")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "Company is required"},
		{"whitespace only", "   ", "Company is required"},
		{"present", "Acme", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check(tt.value, nil))
		})
	}
}

func TestEmail(t *testing.T) {
	check := Email()

	tests := []struct {
		value string
		valid bool
	}{
		{"jane@acme.com", true},
		{"jane.doe+tag@sub.acme.io", true},
		{"jane@acme", false},
		{"@acme.com", false},
		{"jane@", false},
		{"jane doe@acme.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := check(tt.value, nil)
			if tt.valid {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, "Please enter a valid email address", got)
			}
		})
	}
}

func TestMinLength(t *testing.T) {
	check := MinLength("Message", 10)

	assert.Equal(t, "Message must be at least 10 characters long", check("too short", nil))
	assert.Equal(t, "Message must be at least 10 characters long", check("  padded      ", nil))
	assert.Empty(t, check("long enough message", nil))
}

func TestMinLength_CountsRunesNotBytes(t *testing.T) {
	check := MinLength("Message", 10)

	// nine accented characters span 18 bytes and must still fail
	assert.Equal(t, "Message must be at least 10 characters long", check("ééééééééé", nil))
	// ten runes pass regardless of byte width
	assert.Empty(t, check("éééééééééé", nil))
	assert.Empty(t, check("こんにちは、世界です。", nil))
}

func TestOptionalPhone(t *testing.T) {
	check := OptionalPhone()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"empty is valid", "", true},
		{"formatted US number", "+1 (555) 123-4567", true},
		{"bare digits", "15551234567", true},
		{"international", "+442071234567", true},
		{"letters", "abc", false},
		{"leading zero", "0555123456", false},
		{"too long", "+12345678901234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := check(tt.value, nil)
			if tt.valid {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, "Please enter a valid phone number", got)
			}
		})
	}
}
