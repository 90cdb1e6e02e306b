package validator

import (
	"errors"

	"github.com/dmitrymomot/studentcheck/pkg/cpf"
)

// ValidCPF validates a Brazilian CPF with modulo-11 check digits.
// Numbers made of one repeated digit fail with KindRepeatedDigits, every other
// failure (including a wrong digit count) with KindChecksumInvalid.
func ValidCPF(field, value string) Rule {
	err := cpf.Check(value)

	kind := KindChecksumInvalid
	message := "must be a valid CPF"
	key := "validation.cpf"
	if errors.Is(err, cpf.ErrRepeatedDigits) {
		kind = KindRepeatedDigits
		message = "must not consist of a single repeated digit"
		key = "validation.cpf_repeated_digits"
	}

	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Kind:           kind,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
			Value: value,
		},
	}
}
