package student_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/studentcheck/pkg/validator"
	"github.com/dmitrymomot/studentcheck/svc/student"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		kinds []validator.Kind
	}{
		{"valid", "João", nil},
		{"valid with accents and spaces", "Maria José", nil},
		{"empty accumulates every failure", "", []validator.Kind{
			validator.KindEmpty, validator.KindLengthOutOfRange, validator.KindFormatInvalid,
		}},
		{"blank", "   ", []validator.Kind{validator.KindEmpty}},
		{"too short", "J", []validator.Kind{validator.KindLengthOutOfRange}},
		{"too long", strings.Repeat("a", 101), []validator.Kind{validator.KindLengthOutOfRange}},
		{"exactly max length", strings.Repeat("a", 100), nil},
		{"digits", "J0ão", []validator.Kind{validator.KindFormatInvalid}},
		{"too short and symbol", "@", []validator.Kind{validator.KindLengthOutOfRange, validator.KindFormatInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := student.ValidateName(student.FieldFirstName, tt.value)
			assert.Equal(t, tt.kinds, nilIfEmpty(errs.Kinds()))
			for _, e := range errs {
				assert.Equal(t, student.FieldFirstName, e.Field)
				assert.Equal(t, tt.value, e.Value)
			}
		})
	}
}

func TestValidateName_CountsRunes(t *testing.T) {
	t.Parallel()

	// 100 two-byte characters stay within the limit.
	assert.Empty(t, student.ValidateName(student.FieldLastName, strings.Repeat("é", 100)))
	assert.Equal(t,
		[]validator.Kind{validator.KindLengthOutOfRange},
		student.ValidateName(student.FieldLastName, strings.Repeat("é", 101)).Kinds(),
	)
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		kinds []validator.Kind
	}{
		{"valid", "joao@exemplo.com", nil},
		{"valid subdomain", "maria.santos@mail.exemplo.com.br", nil},
		{"no at sign", "teste", []validator.Kind{validator.KindFormatInvalid, validator.KindFormatInvalid}},
		{"domain without dot", "email@invalido", []validator.Kind{validator.KindFormatInvalid}},
		{"empty local part", "@exemplo.com", []validator.Kind{validator.KindFormatInvalid, validator.KindFormatInvalid}},
		{"two at signs", "a@b@c.com", []validator.Kind{validator.KindFormatInvalid, validator.KindFormatInvalid}},
		{"empty", "", []validator.Kind{validator.KindEmpty, validator.KindFormatInvalid, validator.KindFormatInvalid}},
		{"too long", strings.Repeat("a", 250) + "@x.com", []validator.Kind{validator.KindLengthOutOfRange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := student.ValidateEmail(tt.value)
			assert.Equal(t, tt.kinds, nilIfEmpty(errs.Kinds()))
		})
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		kinds []validator.Kind
	}{
		{"valid", "12345678909", nil},
		{"valid 2", "52998224725", nil},
		{"wrong check digit", "12345678900", []validator.Kind{validator.KindChecksumInvalid}},
		{"repeated digits", "11111111111", []validator.Kind{validator.KindRepeatedDigits}},
		{"too short", "123", []validator.Kind{validator.KindLengthOutOfRange, validator.KindChecksumInvalid}},
		{"formatted", "529.982.247-25", []validator.Kind{validator.KindLengthOutOfRange, validator.KindFormatInvalid}},
		{"letters", "1234567890a", []validator.Kind{validator.KindFormatInvalid, validator.KindChecksumInvalid}},
		{"empty", "", []validator.Kind{
			validator.KindEmpty, validator.KindLengthOutOfRange, validator.KindFormatInvalid, validator.KindChecksumInvalid,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := student.ValidateDocument(tt.value)
			assert.Equal(t, tt.kinds, nilIfEmpty(errs.Kinds()))
		})
	}
}

func TestValidateDocument_SentinelErrors(t *testing.T) {
	t.Parallel()

	errs := student.ValidateDocument("123")
	require.NotEmpty(t, errs)
	assert.ErrorIs(t, errs, validator.ErrInvalidLength)
	assert.ErrorIs(t, errs, validator.ErrInvalidChecksum)
	assert.NotErrorIs(t, errs, validator.ErrFieldRequired)
}

func nilIfEmpty(kinds []validator.Kind) []validator.Kind {
	if len(kinds) == 0 {
		return nil
	}
	return kinds
}
