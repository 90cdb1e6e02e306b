package validator

import "strings"

// Nested reports a composed value that carries its own validation state as a
// single error. When the composed value lists messages they are joined with
// ", " and exposed as the "errors" translation value.
func Nested(field, value string, valid bool, errs []string) Rule {
	rule := Rule{
		Check: func() bool {
			return valid
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindNestedInvalid,
			Message:        "is invalid",
			TranslationKey: "validation.nested",
			TranslationValues: map[string]any{
				"field": field,
			},
			Value: value,
		},
	}

	if len(errs) == 0 {
		return rule
	}

	joined := strings.Join(errs, ", ")
	return rule.
		WithMessage("validation.nested_with_errors", "is invalid: "+joined).
		WithValues(map[string]any{"errors": joined})
}
