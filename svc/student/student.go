package student

import "github.com/dmitrymomot/studentcheck/pkg/validator"

// component is the validation surface shared by the value objects.
type component interface {
	IsValid() bool
	Errors() []string
	String() string
}

// Student aggregates a Name, a Document and an Email. Its own messages
// report which components are invalid; the components keep the details.
type Student struct {
	state
	name     *Name
	document *Document
	email    *Email
	messages *Messages
}

// NewStudent composes already validated value objects. Components are not
// re-validated; an invalid or nil component produces one aggregate message.
func NewStudent(name *Name, document *Document, email *Email, opts ...Option) *Student {
	o := newOptions(opts)
	s := &Student{
		name:     name,
		document: document,
		email:    email,
		messages: o.messages,
	}
	s.state = newState(o.messages, s.validate())
	return s
}

func (s *Student) Name() *Name { return s.name }

func (s *Student) Document() *Document { return s.document }

func (s *Student) Email() *Email { return s.email }

// Messages returns the catalog used to render the student's messages.
func (s *Student) Messages() *Messages { return s.messages }

func (s *Student) validate() validator.ValidationErrors {
	return validator.Collect(
		componentRule(FieldName, s.name != nil, s.name),
		componentRule(FieldEmail, s.email != nil, s.email),
		componentRule(FieldDocument, s.document != nil, s.document),
	)
}

func componentRule(field string, present bool, c component) validator.Rule {
	if !present {
		return validator.Required(field, "").WithMessage("student.required", "is required")
	}
	return validator.Nested(field, c.String(), c.IsValid(), c.Errors())
}

// TotalErrors counts the aggregate messages and the messages of every
// component.
func (s *Student) TotalErrors() int {
	total := len(s.errors)
	for _, c := range s.components() {
		total += len(c.Errors())
	}
	return total
}

// components returns the non-nil components in Name, Email, Document order.
func (s *Student) components() []component {
	var out []component
	if s.name != nil {
		out = append(out, s.name)
	}
	if s.email != nil {
		out = append(out, s.email)
	}
	if s.document != nil {
		out = append(out, s.document)
	}
	return out
}
