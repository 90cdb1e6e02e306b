package student

import (
	"slices"

	"github.com/dmitrymomot/studentcheck/pkg/validator"
)

// state holds the outcome of a validation pass run once at construction.
type state struct {
	failures validator.ValidationErrors
	errors   []string
}

func newState(m *Messages, failures validator.ValidationErrors) state {
	return state{failures: failures, errors: m.RenderAll(failures)}
}

// IsValid reports whether validation produced no failures.
func (s state) IsValid() bool {
	return len(s.errors) == 0
}

// Errors returns a copy of the rendered messages in rule order.
func (s state) Errors() []string {
	return slices.Clone(s.errors)
}

// Failures returns a copy of the structured failures behind Errors.
func (s state) Failures() validator.ValidationErrors {
	return s.failures.Clone()
}
