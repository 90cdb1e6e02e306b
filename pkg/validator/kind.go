package validator

// Kind classifies why a rule failed. Presentation layers can branch on the
// kind without parsing messages.
type Kind string

const (
	// KindEmpty means a required value is missing or blank.
	KindEmpty Kind = "empty"
	// KindLengthOutOfRange means a value is shorter or longer than allowed.
	KindLengthOutOfRange Kind = "length_out_of_range"
	// KindFormatInvalid means a value fails a character class or structural check.
	KindFormatInvalid Kind = "format_invalid"
	// KindChecksumInvalid means check digit verification failed.
	KindChecksumInvalid Kind = "checksum_invalid"
	// KindRepeatedDigits means a number consists of a single repeated digit.
	KindRepeatedDigits Kind = "repeated_digits"
	// KindNestedInvalid means a composed value reported its own failures.
	KindNestedInvalid Kind = "nested_invalid"
)

// Err maps the kind to the package sentinel error.
func (k Kind) Err() error {
	switch k {
	case KindEmpty:
		return ErrFieldRequired
	case KindLengthOutOfRange:
		return ErrInvalidLength
	case KindFormatInvalid:
		return ErrInvalidFormat
	case KindChecksumInvalid, KindRepeatedDigits:
		return ErrInvalidChecksum
	default:
		return ErrValidationFailed
	}
}
