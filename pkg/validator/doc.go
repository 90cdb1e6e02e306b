// Package validator provides declarative, translation-friendly validation
// rules for string fields.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Rules are evaluated by Apply in declaration order and every
// failure is collected, so a single call reports all problems with a value
// instead of stopping at the first one.
//
// Each ValidationError carries:
//   - Field             – the field identifier the rule was declared for
//   - Kind              – the failure category (empty, length, format, ...)
//   - Message           – a default English message
//   - TranslationKey    – key used to look up a localized template
//   - TranslationValues – named parameters for the template
//   - Value             – the attempted value
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.EmailAddress("email", email),
//	    validator.MaxLen("email", email, 254),
//	)
//	for _, e := range validator.ExtractValidationErrors(err) {
//	    fmt.Println(e.Kind, e.Message)
//	}
//
// Default messages can be replaced per rule with Rule.WithMessage, which is
// how callers bind a rule to their own translation keys.
//
// # Lengths
//
// Length rules count characters (runes), not bytes, so "João" has length 4.
//
// The package holds no global mutable state and is safe for concurrent use.
package validator
