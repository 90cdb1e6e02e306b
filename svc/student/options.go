package student

type options struct {
	messages *Messages
}

// Option configures how a value object or Student renders its messages.
type Option func(*options)

// WithMessages renders messages through m instead of DefaultMessages.
func WithMessages(m *Messages) Option {
	return func(o *options) {
		if m != nil {
			o.messages = m
		}
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.messages == nil {
		o.messages = DefaultMessages()
	}
	return o
}
