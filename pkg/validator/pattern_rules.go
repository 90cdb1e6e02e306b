package validator

import (
	"regexp"
	"strings"
	"unicode"
)

// Matches validates value against a precompiled pattern. Empty values fail,
// mirroring an anchored pattern that requires at least one character.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern != nil && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindFormatInvalid,
			Message:        "must match " + description + " pattern",
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
			Value: value,
		},
	}
}

// Digits validates that a non-blank string contains only decimal digits.
// Any Unicode decimal digit is accepted; use a length rule together with
// ValidCPF when ASCII digits are required.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			for _, r := range value {
				if !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindFormatInvalid,
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric",
			TranslationValues: map[string]any{
				"field": field,
			},
			Value: value,
		},
	}
}
