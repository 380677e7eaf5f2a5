package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldJSONNames maps struct field names to the JSON keys the form layer
// renders errors under.
var fieldJSONNames = map[string]string{
	"Name":      "name",
	"Email":     "email",
	"Message":   "message",
	"EmailType": "emailType",
}

// fieldLabels maps struct field names to user-facing labels
var fieldLabels = map[string]string{
	"Name":      "Name",
	"Email":     "Email",
	"Message":   "Message",
	"EmailType": "Recipient category",
}

// FieldErrors converts validator.ValidationErrors into a field -> messages
// map keyed by JSON field name, aggregating every failure found rather than
// stopping at the first.
func FieldErrors(err error) map[string][]string {
	details := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error; keep the caller's contract anyway
		details["request"] = []string{err.Error()}
		return details
	}

	for _, e := range validationErrors {
		key := jsonFieldName(e.Field())
		details[key] = append(details[key], formatSingleError(e))
	}

	return details
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "contact_email":
		return fmt.Sprintf("%s is not valid", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

func jsonFieldName(fieldName string) string {
	if name, ok := fieldJSONNames[fieldName]; ok {
		return name
	}
	return strings.ToLower(fieldName[:1]) + fieldName[1:]
}

func fieldLabel(fieldName string) string {
	if label, ok := fieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
