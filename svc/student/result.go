package student

import "github.com/dmitrymomot/studentcheck/pkg/validator"

// Failure is one failed aggregate rule.
type Failure struct {
	Property       string         `json:"property"`
	Message        string         `json:"message"`
	AttemptedValue string         `json:"attemptedValue"`
	Kind           validator.Kind `json:"kind"`
	// Details lists the messages of the failing component.
	Details []string `json:"details,omitempty"`
}

// Result is the structured outcome of validating a Student.
type Result struct {
	Valid    bool      `json:"valid"`
	Failures []Failure `json:"failures"`
}

// Messages returns the failure messages in order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		out = append(out, f.Message)
	}
	return out
}

var propertyNames = map[string]string{
	FieldName:     "Name",
	FieldEmail:    "Email",
	FieldDocument: "Document",
}

// ValidateWithDetails re-runs the aggregate rules and reports each failure
// with its property, message and attempted value. The student is not modified.
func (s *Student) ValidateWithDetails() Result {
	failures := s.validate()
	result := Result{
		Valid:    len(failures) == 0,
		Failures: make([]Failure, 0, len(failures)),
	}

	for _, f := range failures {
		failure := Failure{
			Property:       propertyNames[f.Field],
			Message:        s.messages.Render(f),
			AttemptedValue: f.Value,
			Kind:           f.Kind,
		}
		if c := s.component(f.Field); c != nil {
			failure.Details = c.Errors()
		}
		result.Failures = append(result.Failures, failure)
	}

	return result
}

func (s *Student) component(field string) component {
	switch {
	case field == FieldName && s.name != nil:
		return s.name
	case field == FieldEmail && s.email != nil:
		return s.email
	case field == FieldDocument && s.document != nil:
		return s.document
	}
	return nil
}

// ResponseError is one entry of Response.Errors.
type ResponseError struct {
	Message string `json:"message"`
}

// ValidationDetails holds the component messages of a Response.
type ValidationDetails struct {
	Name     []string `json:"name"`
	Email    []string `json:"email"`
	Document []string `json:"document"`
}

// Response is the API representation of a student's validation state.
type Response struct {
	Success           bool              `json:"success"`
	Errors            []ResponseError   `json:"errors"`
	ValidationDetails ValidationDetails `json:"validationDetails"`
}

// Response returns the API representation. Lists are never nil, so they
// encode as JSON arrays.
func (s *Student) Response() Response {
	resp := Response{
		Success: s.IsValid(),
		Errors:  make([]ResponseError, 0, len(s.errors)),
		ValidationDetails: ValidationDetails{
			Name:     componentErrors(s.name != nil, s.name),
			Email:    componentErrors(s.email != nil, s.email),
			Document: componentErrors(s.document != nil, s.document),
		},
	}
	for _, msg := range s.errors {
		resp.Errors = append(resp.Errors, ResponseError{Message: msg})
	}
	return resp
}

func componentErrors(present bool, c component) []string {
	if !present {
		return []string{}
	}
	if errs := c.Errors(); len(errs) > 0 {
		return errs
	}
	return []string{}
}

// Summary splits a batch of students by validity.
type Summary struct {
	Valid   []*Student
	Invalid []*Student
}

func (s Summary) Total() int {
	return len(s.Valid) + len(s.Invalid)
}

// TotalErrors sums TotalErrors over the invalid students.
func (s Summary) TotalErrors() int {
	total := 0
	for _, st := range s.Invalid {
		total += st.TotalErrors()
	}
	return total
}

// Summarize groups students by validity, keeping input order. Nil entries
// are skipped.
func Summarize(students []*Student) Summary {
	var summary Summary
	for _, st := range students {
		switch {
		case st == nil:
		case st.IsValid():
			summary.Valid = append(summary.Valid, st)
		default:
			summary.Invalid = append(summary.Invalid, st)
		}
	}
	return summary
}
