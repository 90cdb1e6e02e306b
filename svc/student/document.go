package student

import "github.com/dmitrymomot/studentcheck/pkg/cpf"

// Document is a CPF given as eleven digits without punctuation.
type Document struct {
	state
	number string
}

func NewDocument(number string, opts ...Option) *Document {
	o := newOptions(opts)
	return &Document{
		state:  newState(o.messages, ValidateDocument(number)),
		number: number,
	}
}

func (d *Document) Number() string { return d.number }

// Formatted returns the number as XXX.XXX.XXX-XX, or unchanged when it is
// not eleven digits.
func (d *Document) Formatted() string {
	return cpf.Format(d.number)
}

func (d *Document) String() string { return d.number }
