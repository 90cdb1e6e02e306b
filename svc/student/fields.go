package student

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/studentcheck/pkg/cpf"
	"github.com/dmitrymomot/studentcheck/pkg/validator"
)

// Field identifiers used in failures and as catalog label keys.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldDocument  = "document"
)

const (
	MinNameLength  = 2
	MaxNameLength  = 100
	MaxEmailLength = 254
	DocumentLength = cpf.Length
)

// namePattern admits ASCII letters, Latin-1 accented letters (À through ÿ)
// and whitespace.
var namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

// NameRules returns the rules for a personal name part. field is used for
// the message label.
func NameRules(field, value string) []validator.Rule {
	return []validator.Rule{
		validator.Required(field, value),
		validator.MinLen(field, value, MinNameLength),
		validator.MaxLen(field, value, MaxNameLength),
		validator.Matches(field, value, namePattern, "letters and spaces").
			WithMessage("student.name_format", "must contain only letters and spaces"),
	}
}

// EmailRules returns the rules for an email address.
func EmailRules(value string) []validator.Rule {
	return []validator.Rule{
		validator.Required(FieldEmail, value),
		validator.EmailAddress(FieldEmail, value),
		validator.MaxLen(FieldEmail, value, MaxEmailLength),
		validator.EmailFormat(FieldEmail, value).
			WithMessage("student.email_format", "has an invalid format"),
	}
}

// DocumentRules returns the rules for a CPF given as exactly eleven digits.
func DocumentRules(value string) []validator.Rule {
	return []validator.Rule{
		validator.Required(FieldDocument, value),
		validator.Len(FieldDocument, value, DocumentLength).
			WithMessage("student.document_length", fmt.Sprintf("must have %d digits", DocumentLength)),
		validator.Digits(FieldDocument, value),
		validator.ValidCPF(FieldDocument, value),
	}
}

// ValidateName validates a name part and returns every failure in rule order.
func ValidateName(field, value string) validator.ValidationErrors {
	return validator.Collect(NameRules(field, value)...)
}

func ValidateEmail(value string) validator.ValidationErrors {
	return validator.Collect(EmailRules(value)...)
}

func ValidateDocument(value string) validator.ValidationErrors {
	return validator.Collect(DocumentRules(value)...)
}
