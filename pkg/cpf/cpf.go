package cpf

import "strings"

const (
	// Length is the number of digits in a CPF.
	Length = 11
	// BaseLength is the number of digits preceding the verifier digits.
	BaseLength = 9
)

// IsValid reports whether s is a valid CPF. Non-digit characters are ignored.
func IsValid(s string) bool {
	return Check(s) == nil
}

// Check validates s and returns ErrInvalidLength, ErrRepeatedDigits or
// ErrInvalidChecksum describing the first problem found, or nil.
func Check(s string) error {
	digits := Strip(s)
	if len(digits) != Length {
		return ErrInvalidLength
	}

	if allEqual(digits) {
		return ErrRepeatedDigits
	}

	d := toInts(digits)
	if verifier(d[:BaseLength]) != d[9] {
		return ErrInvalidChecksum
	}
	if verifier(d[:BaseLength+1]) != d[10] {
		return ErrInvalidChecksum
	}

	return nil
}

// CheckDigits returns the two verifier digits for a nine digit base.
// Non-digit characters in base are ignored.
func CheckDigits(base string) (string, error) {
	digits := Strip(base)
	if len(digits) != BaseLength {
		return "", ErrInvalidBase
	}

	d := toInts(digits)
	first := verifier(d)
	second := verifier(append(d, first))

	return string([]byte{byte('0' + first), byte('0' + second)}), nil
}

// Strip returns s with every character other than an ASCII digit removed.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Format renders an eleven digit CPF as "XXX.XXX.XXX-XX".
// Inputs that do not strip down to eleven digits are returned unchanged.
func Format(s string) string {
	digits := Strip(s)
	if len(digits) != Length {
		return s
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// Mask hides the first three and the verifier digits of an eleven digit CPF
// ("***.982.247-**"). Other input is masked entirely.
func Mask(s string) string {
	digits := Strip(s)
	if len(digits) != Length {
		return strings.Repeat("*", len(s))
	}
	return "***." + digits[3:6] + "." + digits[6:9] + "-**"
}

// verifier computes the next verifier digit for d. Weights start at
// len(d)+1 and decrease by one per position.
func verifier(d []int) int {
	sum := 0
	weight := len(d) + 1
	for _, v := range d {
		sum += v * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allEqual(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func toInts(digits string) []int {
	d := make([]int, len(digits), len(digits)+1)
	for i := 0; i < len(digits); i++ {
		d[i] = int(digits[i] - '0')
	}
	return d
}
