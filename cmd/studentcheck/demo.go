package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/studentcheck/pkg/logger"
	"github.com/dmitrymomot/studentcheck/svc/student"
)

// maxListedErrors limits the errors listed per scenario.
const maxListedErrors = 3

type scenario struct {
	key    string
	record student.Record
}

var scenarios = []scenario{
	{"scenario_empty", student.Record{}},
	{"scenario_short_name", student.Record{FirstName: "A", LastName: "B", Document: "12345678909", Email: "teste@exemplo.com"}},
	{"scenario_name_digits", student.Record{FirstName: "João123", LastName: "Silva456", Document: "12345678909", Email: "teste@exemplo.com"}},
	{"scenario_email_no_at", student.Record{FirstName: "João", LastName: "Silva", Document: "12345678909", Email: "testeexemplo.com"}},
	{"scenario_repeated_cpf", student.Record{FirstName: "João", LastName: "Silva", Document: "11111111111", Email: "teste@exemplo.com"}},
	{"scenario_all_valid", student.Record{FirstName: "João", LastName: "Silva", Document: "12345678909", Email: "teste@exemplo.com"}},
}

var batch = []student.Record{
	{FirstName: "João", LastName: "Silva", Document: "12345678909", Email: "joao@exemplo.com"},
	{FirstName: "", LastName: "", Document: "123", Email: "email-invalido"},
	{FirstName: "Maria", LastName: "Santos", Document: "12345678909", Email: "maria@exemplo.com"},
}

func newDemoCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through validation examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := &demo{app: c.app, p: newPrinter(cmd.OutOrStdout())}
			if c.app.output == outputJSON {
				d.json()
			} else {
				d.text()
			}
			c.app.logger.InfoContext(cmd.Context(), "demo finished", logger.Count(len(scenarios)))
			return d.p.err
		},
	}
}

type demo struct {
	app *app
	p   *printer
	n   int
}

func (d *demo) opt() student.Option {
	return student.WithMessages(d.app.messages)
}

func (d *demo) t(key, def string, args ...string) string {
	return d.app.text("cli.demo."+key, def, args...)
}

func (d *demo) subject(key string) string {
	return d.app.text("cli.subjects."+key, key)
}

func (d *demo) step(key, def string) {
	d.n++
	if d.n > 1 {
		d.p.blank()
	}
	d.p.line(0, fmt.Sprintf("%d. %s", d.n, d.t(key, def)))
}

func (d *demo) header(key, def string) {
	d.p.blank()
	d.p.line(0, d.t(key, def))
}

func (d *demo) validity(indent int, subject string, valid bool) {
	d.p.line(indent, d.app.text("cli.valid", "%{subject} valid? %{value}",
		"subject", d.subject(subject), "value", d.app.yesNo(valid)))
}

func (d *demo) show(indent int, subject, value string) {
	d.p.line(indent, d.app.text("cli.show", "%{subject}: %{value}", "subject", d.subject(subject), "value", value))
}

func (d *demo) items(indent int, key string, texts []string) {
	for _, text := range texts {
		d.p.line(indent, d.app.text(key, "- %{text}", "text", text))
	}
}

type validated interface {
	IsValid() bool
	Errors() []string
	String() string
}

// valueObject prints the validity of v, followed by its errors when invalid
// or by its value when valid.
func (d *demo) valueObject(subject string, v validated) {
	if v.IsValid() {
		d.show(1, subject, v.String())
	}
	d.validity(1, subject, v.IsValid())
	d.items(1, "cli.item", v.Errors())
}

func (d *demo) text() {
	d.p.line(0, d.t("title", "=== VALIDATION DEMO ==="))
	d.p.blank()

	d.step("invalid_name", "Testing an invalid Name:")
	d.valueObject("name", student.NewName("", "", d.opt()))
	d.step("valid_name", "Testing a valid Name:")
	d.valueObject("name", student.NewName("João", "Silva", d.opt()))

	d.step("invalid_email", "Testing an invalid Email:")
	d.valueObject("email", student.NewEmail("teste", d.opt()))
	d.step("valid_email", "Testing a valid Email:")
	d.valueObject("email", student.NewEmail("joao.silva@exemplo.com.br", d.opt()))

	d.step("invalid_document", "Testing an invalid CPF:")
	d.valueObject("document", student.NewDocument("12345678900", d.opt()))
	d.step("valid_document", "Testing a valid CPF:")
	d.valueObject("document", student.NewDocument("12345678909", d.opt()))

	d.step("invalid_student", "Testing a Student with invalid data:")
	invalid := student.Record{Document: "123", Email: "email-invalido"}.Student(d.opt())
	d.validity(1, "student", invalid.IsValid())
	d.items(1, "cli.item", invalid.Errors())

	d.step("valid_student", "Testing a Student with valid data:")
	valid := student.Record{FirstName: "Maria", LastName: "Santos", Document: "12345678909", Email: "maria.santos@exemplo.com"}.Student(d.opt())
	d.show(1, "name", valid.Name().String())
	d.show(1, "document", valid.Document().String())
	d.show(1, "email", valid.Email().String())
	d.validity(1, "student", valid.IsValid())

	d.step("details", "Detailed Student validation:")
	d.details(student.Record{FirstName: "A", Document: "11111111111", Email: "email@invalido"}.Student(d.opt()))

	d.batch()
	d.aggregation()
	d.scenarios()
	d.api()

	d.p.blank()
	d.p.line(0, d.t("end", "=== END OF DEMO ==="))
}

func (d *demo) details(s *student.Student) {
	result := s.ValidateWithDetails()
	d.validity(1, "student", result.Valid)
	if result.Valid {
		return
	}
	d.p.line(1, d.t("errors_found", "Errors found:"))
	for _, f := range result.Failures {
		d.p.line(1, d.t("property", "- Property: %{value}", "value", f.Property))
		d.p.line(2, d.t("error", "Error: %{value}", "value", f.Message))
		d.p.line(2, d.t("attempted", "Attempted value: %{value}", "value", f.AttemptedValue))
	}
}

func (d *demo) batch() {
	d.header("batch", "=== BATCH VALIDATION ===")
	summary := student.Summarize(student.NewStudents(batch, d.opt()))
	d.report(summary)
}

// report prints the counts of a summary and the errors of invalid students.
func (d *demo) report(summary student.Summary) {
	d.p.line(0, d.app.text("cli.report.total", "Students: %{count}", "count", strconv.Itoa(summary.Total())))
	d.p.line(0, d.app.text("cli.report.valid", "Valid: %{count}", "count", strconv.Itoa(len(summary.Valid))))
	d.p.line(0, d.app.text("cli.report.invalid", "Invalid: %{count}", "count", strconv.Itoa(len(summary.Invalid))))
	if len(summary.Invalid) == 0 {
		return
	}

	d.p.blank()
	d.p.line(0, d.app.text("cli.report.invalid_students", "Invalid students:"))
	for _, s := range summary.Invalid {
		d.p.line(0, d.app.text("cli.item", "- %{text}", "text", s.Name().String()))
		d.items(1, "cli.bullet", s.Errors())
	}
}

func (d *demo) aggregation() {
	d.header("aggregation", "=== ERROR AGGREGATION ===")
	s := student.Record{FirstName: "A", LastName: "B", Document: "11111111111", Email: "email"}.Student(d.opt())

	d.validity(0, "student", s.IsValid())
	d.p.line(0, d.app.text("cli.report.total_errors", "Total errors: %{count}", "count", strconv.Itoa(s.TotalErrors())))

	d.p.blank()
	d.p.line(0, d.t("student_errors", "Student errors:"))
	d.items(0, "cli.item", s.Errors())

	d.p.blank()
	d.p.line(0, d.t("field_errors", "Errors by field:"))
	for _, f := range []struct {
		subject string
		errs    []string
	}{
		{"name", s.Name().Errors()},
		{"email", s.Email().Errors()},
		{"document", s.Document().Errors()},
	} {
		if len(f.errs) == 0 {
			continue
		}
		d.p.line(0, d.subject(f.subject)+":")
		d.items(1, "cli.bullet", f.errs)
	}
}

func (d *demo) scenarios() {
	d.header("scenarios", "=== SCENARIOS ===")
	for _, sc := range scenarios {
		s := sc.record.Student(d.opt())
		d.p.blank()
		d.p.line(0, d.t(sc.key, sc.key)+":")
		d.validity(1, "student", s.IsValid())
		if s.IsValid() {
			continue
		}

		errs := s.Errors()
		d.p.line(1, d.t("errors_count", "Errors (%{count}):", "count", strconv.Itoa(len(errs))))
		d.items(2, "cli.bullet", errs[:min(len(errs), maxListedErrors)])
		if extra := len(errs) - maxListedErrors; extra > 0 {
			d.p.line(2, d.t("more_errors", "... and %{count} more error(s)", "count", strconv.Itoa(extra)))
		}
	}
}

func (d *demo) api() {
	d.header("api", "=== API FORMATTING ===")
	s := student.Record{FirstName: "", LastName: "Silva", Document: "123", Email: "joao@"}.Student(d.opt())
	d.p.line(0, d.t("api_json", "JSON for an API:"))
	d.p.jsonIndented(0, s.Response())
}

// demoEntry is one scenario in JSON output.
type demoEntry struct {
	Title       string           `json:"title"`
	Input       student.Record   `json:"input"`
	TotalErrors int              `json:"totalErrors"`
	Details     student.Result   `json:"details"`
	Response    student.Response `json:"response"`
}

func (d *demo) json() {
	entries := make([]demoEntry, 0, len(scenarios))
	for _, sc := range scenarios {
		s := sc.record.Student(d.opt())
		entries = append(entries, demoEntry{
			Title:       d.t(sc.key, sc.key),
			Input:       sc.record,
			TotalErrors: s.TotalErrors(),
			Details:     s.ValidateWithDetails(),
			Response:    s.Response(),
		})
	}
	d.p.json(entries)
}
