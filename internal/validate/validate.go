// Package validate holds the per-field validation rules for the order form.
// Every validator is a pure function from a raw value to an error message,
// empty string meaning valid.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// Jersey numbers are a bounded range; the raw string is kept verbatim so
	// leading zeros survive.
	jerseyNumberMin = 0
	jerseyNumberMax = 500

	minNameLength = 2
)

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type FieldError struct {
	Field   string
	Message string
}

type validatorFunc func(value string) string

// fieldOrder fixes iteration order for whole-form validation; the first
// failing field in this order is the one the presentation layer focuses.
var fieldOrder = []string{
	"name",
	"contactId",
	"jerseyNumber",
	"batch",
	"size",
	"email",
	"collarType",
	"sleeveType",
}

var validators = map[string]validatorFunc{
	"name": func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "Name is required"
		}
		if len(trimmed) < minNameLength {
			return "Name must be at least 2 characters"
		}
		return ""
	},
	"contactId": func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "Contact ID is required"
		}
		if !digitsOnly.MatchString(trimmed) {
			return "Contact ID must contain only digits"
		}
		return ""
	},
	"jerseyNumber": func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "Jersey number is required"
		}
		if !digitsOnly.MatchString(trimmed) {
			return "Jersey number must contain only digits"
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil || n < jerseyNumberMin || n > jerseyNumberMax {
			return "Jersey number must be between 0 and 500"
		}
		return ""
	},
	"batch": func(value string) string {
		// Optional field, always valid.
		return ""
	},
	"size": func(value string) string {
		if value == "" {
			return "Please select a size"
		}
		return ""
	},
	"email": func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "Email is required"
		}
		if !emailShape.MatchString(value) {
			return "Please enter a valid email address"
		}
		return ""
	},
	"collarType": func(value string) string {
		if value == "" {
			return "Please select collar type"
		}
		return ""
	},
	"sleeveType": func(value string) string {
		if value == "" {
			return "Please select sleeve type"
		}
		return ""
	},
}

// Field validates a single field. Unknown fields are valid; the payment
// modal's transactionRef is checked inside the payment sub-flow, not here.
func Field(name, value string) string {
	validator, ok := validators[name]
	if !ok {
		return ""
	}
	return validator(value)
}

// Form runs every validator over the value map and returns the failures in
// fieldOrder. Missing keys validate as empty values. An empty result means
// the form is valid.
func Form(values map[string]string) []FieldError {
	var failures []FieldError
	for _, field := range fieldOrder {
		if msg := Field(field, values[field]); msg != "" {
			failures = append(failures, FieldError{Field: field, Message: msg})
		}
	}
	return failures
}

// Fields returns the validated field names in iteration order.
func Fields() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}
