package student

// Email is an email address.
type Email struct {
	state
	address string
}

func NewEmail(address string, opts ...Option) *Email {
	o := newOptions(opts)
	return &Email{
		state:   newState(o.messages, ValidateEmail(address)),
		address: address,
	}
}

func (e *Email) Address() string { return e.address }

func (e *Email) String() string { return e.address }
