package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps payload field names to user-friendly labels
var FieldLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"company": "Company",
	"budget":  "Budget",
	"message": "Message",
}

// FieldError describes one failed constraint on one payload field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors is the rejected side of a validation result
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	messages := make([]string, len(fe))
	for i, e := range fe {
		messages[i] = e.Message
	}
	return strings.Join(messages, "; ")
}

// Fields lists the offending field names, in payload order
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for _, e := range fe {
		fields = append(fields, e.Field)
	}
	return fields
}

// fromValidatorError converts the result of validator.Var into FieldErrors for field
func fromValidatorError(field string, err error) FieldErrors {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Field: field, Rule: "invalid", Message: fmt.Sprintf("%s: %s", getFieldLabel(field), err.Error())}}
	}

	out := make(FieldErrors, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   field,
			Rule:    e.Tag(),
			Message: formatSingleError(field, e.Tag(), e.Param()),
		})
	}
	return out
}

// formatSingleError formats a single failed rule as a user-friendly message
func formatSingleError(field, tag, param string) string {
	label := getFieldLabel(field)

	switch tag {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", label, param)
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", label, param)
	case "email":
		return fmt.Sprintf("%s: is not a valid email address", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, tag)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
