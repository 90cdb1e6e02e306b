package cpf

import "errors"

var (
	// ErrInvalidLength is returned when the input does not hold exactly eleven digits.
	ErrInvalidLength = errors.New("cpf must have 11 digits")

	// ErrRepeatedDigits is returned when all eleven digits are the same.
	ErrRepeatedDigits = errors.New("cpf digits must not all be equal")

	// ErrInvalidChecksum is returned when a verifier digit does not match.
	ErrInvalidChecksum = errors.New("cpf verifier digits do not match")

	// ErrInvalidBase is returned by CheckDigits when the base is not nine digits.
	ErrInvalidBase = errors.New("cpf base must have 9 digits")
)
