package student

import "slices"

// Name is a person's first and last name.
type Name struct {
	state
	firstName string
	lastName  string
}

// NewName validates both parts with the name rules, first name failures
// before last name failures. Input is stored unchanged.
func NewName(firstName, lastName string, opts ...Option) *Name {
	o := newOptions(opts)
	failures := slices.Concat(
		ValidateName(FieldFirstName, firstName),
		ValidateName(FieldLastName, lastName),
	)
	return &Name{
		state:     newState(o.messages, failures),
		firstName: firstName,
		lastName:  lastName,
	}
}

func (n *Name) FirstName() string { return n.firstName }

func (n *Name) LastName() string { return n.lastName }

// String returns "First Last".
func (n *Name) String() string {
	return n.firstName + " " + n.lastName
}
