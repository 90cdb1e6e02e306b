package student

import (
	"github.com/dmitrymomot/studentcheck/pkg/cpf"
	"github.com/dmitrymomot/studentcheck/pkg/sanitizer"
)

var cleanName = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.NormalizeWhitespace)

// Record is the primitive form of a student as read from input files.
type Record struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Document  string `json:"document" yaml:"document"`
	Email     string `json:"email" yaml:"email"`
}

// Student builds the value objects and the aggregate from the record.
func (r Record) Student(opts ...Option) *Student {
	return NewStudent(
		NewName(r.FirstName, r.LastName, opts...),
		NewDocument(r.Document, opts...),
		NewEmail(r.Email, opts...),
		opts...,
	)
}

// Normalized returns a copy with whitespace collapsed in names, the email
// trimmed and lowercased, and punctuation removed from the document.
// Value objects never normalize on their own.
func (r Record) Normalized() Record {
	return Record{
		FirstName: cleanName(r.FirstName),
		LastName:  cleanName(r.LastName),
		Document:  cpf.Strip(r.Document),
		Email:     sanitizer.NormalizeEmail(r.Email),
	}
}

// NewStudents builds one Student per record, in order.
func NewStudents(records []Record, opts ...Option) []*Student {
	students := make([]*Student, 0, len(records))
	for _, r := range records {
		students = append(students, r.Student(opts...))
	}
	return students
}
