package serrors

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps struct field names to operator-facing messages.
// An absent key means the field is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Empty() bool { return len(v) == 0 }

// Summary flattens the map into one line for aggregate reporting.
func (v ValidationErrors) Summary() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// FieldLabels overrides the default humanized field name per struct field.
type FieldLabels map[string]string

// ProcessValidatorErrors converts validator.ValidationErrors into per-field
// messages. Messages follow the "<Label> <rule text>" form the dashboard
// renders inline next to each input.
func ProcessValidatorErrors(errs validator.ValidationErrors, labels FieldLabels) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		label := labels[fe.Field()]
		if label == "" {
			label = humanize(fe.Field())
		}
		out[fe.Field()] = messageFor(fe, label)
	}
	return out
}

func messageFor(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "ng_phone":
		return fmt.Sprintf("%s must be a valid Nigerian phone number", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "latitude":
		return "Latitude must be between -90 and 90"
	case "longitude":
		return "Longitude must be between -180 and 180"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// humanize splits a CamelCase field name into words: "AreaOfficeID" -> "Area office ID".
func humanize(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		if i == 0 {
			continue
		}
		if w != strings.ToUpper(w) {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}
