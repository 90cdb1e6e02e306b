// Package sanitizer provides small string transforms used to clean user
// input before validation and to mask personal data before it is logged.
//
// Transforms have the signature func(string) string and can be chained with
// Apply or stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(
//		sanitizer.RemoveControlChars,
//		sanitizer.NormalizeWhitespace,
//	)
//	name := clean("  Maria \t José\n") // "Maria José"
//
// None of the helpers returns an error; input that cannot be processed is
// returned unchanged.
package sanitizer
