// Package forms implements bulk validation of named string fields
// against statically declared rule sets. Validation is stateless: every
// call re-evaluates all fields from scratch, and an empty result map is
// the sole condition for allowing a submission.
package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[1-9][\d]{0,15}$`)
	phoneStrip   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// Values holds the current value of each named form field
type Values map[string]string

// Check validates a single field value against the full value set.
// It returns an error message, or "" when the value passes.
type Check func(value string, values Values) string

// Rule binds a field name to a validation check
type Rule struct {
	Field string
	Check Check
}

// RuleSet is the declared validation for one form, evaluated in order.
// The first failing check per field wins.
type RuleSet []Rule

// Validate evaluates every rule and returns field name → error message
// for each failing field. An empty map means the form may be submitted.
func (rs RuleSet) Validate(values Values) map[string]string {
	errors := make(map[string]string)
	for _, rule := range rs {
		if _, failed := errors[rule.Field]; failed {
			continue
		}
		if msg := rule.Check(values[rule.Field], values); msg != "" {
			errors[rule.Field] = msg
		}
	}
	return errors
}

// Required fails when the trimmed value is empty. The label is the
// human-readable field name used in the message.
func Required(label string) Check {
	return func(value string, _ Values) string {
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("%s is required", label)
		}
		return ""
	}
}

// Email fails when the value does not look like an email address
func Email() Check {
	return func(value string, _ Values) string {
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address"
		}
		return ""
	}
}

// MinLength fails when the trimmed value is shorter than n characters.
// Length is counted in runes so multibyte text is not over-counted.
func MinLength(label string, n int) Check {
	return func(value string, _ Values) string {
		if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
			return fmt.Sprintf("%s must be at least %d characters long", label, n)
		}
		return ""
	}
}

// OptionalPhone passes an empty value, and otherwise validates the
// value as a phone number after stripping spaces, hyphens, and
// parentheses.
func OptionalPhone() Check {
	return func(value string, _ Values) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		if !phonePattern.MatchString(phoneStrip.Replace(value)) {
			return "Please enter a valid phone number"
		}
		return ""
	}
}
