package validator

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Kind              Kind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Value             string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes the sentinel error matching the failure kind.
func (e ValidationError) Unwrap() error {
	return e.Kind.Err()
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match the sentinel of any contained failure.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the default messages recorded for field, in order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// HasKind reports whether any error is of the given kind.
func (ve ValidationErrors) HasKind(kind Kind) bool {
	for _, err := range ve {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// Kinds returns the failure kinds in declaration order.
func (ve ValidationErrors) Kinds() []Kind {
	kinds := make([]Kind, 0, len(ve))
	for _, err := range ve {
		kinds = append(kinds, err.Kind)
	}
	return kinds
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages returns the default messages of all errors in order.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Clone returns a deep copy, including translation values.
func (ve ValidationErrors) Clone() ValidationErrors {
	if ve == nil {
		return nil
	}
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		err.TranslationValues = maps.Clone(err.TranslationValues)
		out[i] = err
	}
	return out
}

// Rule represents a single validation rule. A rule without Check always fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage replaces the default message and translation key of the rule,
// keeping its kind and translation values.
func (r Rule) WithMessage(key, message string) Rule {
	r.Error.TranslationKey = key
	r.Error.Message = message
	return r
}

// WithValues merges extra translation values into the rule error.
func (r Rule) WithValues(values map[string]any) Rule {
	merged := maps.Clone(r.Error.TranslationValues)
	if merged == nil {
		merged = make(map[string]any, len(values))
	}
	maps.Copy(merged, values)
	r.Error.TranslationValues = merged
	return r
}

// Apply executes every rule in order and returns the failures as
// ValidationErrors, or nil when all rules pass. Evaluation never stops early.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check == nil || !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// Collect is Apply returning the concrete collection; it is empty when all rules pass.
func Collect(rules ...Rule) ValidationErrors {
	return ExtractValidationErrors(Apply(rules...))
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
