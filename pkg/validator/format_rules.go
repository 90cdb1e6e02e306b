package validator

import "strings"

// EmailAddress performs the permissive address check: a single "@" that is
// neither the first nor the last character.
func EmailAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			at := strings.IndexByte(value, '@')
			return at > 0 && at != len(value)-1 && at == strings.LastIndexByte(value, '@')
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindFormatInvalid,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
			Value: value,
		},
	}
}

// EmailFormat validates the structural shape local@domain where the local
// part is non-empty and the domain contains a dot.
func EmailFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			local, domain, ok := strings.Cut(value, "@")
			if !ok || strings.Contains(domain, "@") {
				return false
			}
			return local != "" && strings.Contains(domain, ".")
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindFormatInvalid,
			Message:        "must have the form local@domain.tld",
			TranslationKey: "validation.email_format",
			TranslationValues: map[string]any{
				"field": field,
			},
			Value: value,
		},
	}
}
