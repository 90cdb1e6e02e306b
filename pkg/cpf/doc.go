// Package cpf validates Brazilian individual taxpayer numbers (CPF).
//
// A CPF has eleven digits: a nine digit base followed by two verifier digits
// computed with modulo-11 arithmetic. Punctuation such as "123.456.789-09" is
// ignored by every function in this package, only ASCII digits are considered.
//
// # Usage
//
//	if cpf.IsValid("123.456.789-09") {
//	    // accepted
//	}
//
//	switch err := cpf.Check(value); {
//	case errors.Is(err, cpf.ErrRepeatedDigits):
//	    // "11111111111" and friends
//	case errors.Is(err, cpf.ErrInvalidChecksum):
//	    // verifier digits do not match
//	}
//
// Numbers made of a single repeated digit pass the checksum arithmetic but are
// not issued, so they are rejected before any verifier digit is computed.
//
// All functions are pure and safe for concurrent use.
package cpf
