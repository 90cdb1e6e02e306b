package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/studentcheck/pkg/cpf"
	"github.com/dmitrymomot/studentcheck/pkg/logger"
	"github.com/dmitrymomot/studentcheck/pkg/sanitizer"
	"github.com/dmitrymomot/studentcheck/svc/student"
)

const stdinName = "-"

func newValidateCommand(c *cli) *cobra.Command {
	var (
		format    string
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate student records from YAML or JSON files",
		Long: `Validate student records. Each file holds a list of records, or an object
with a "students" list; a record has first_name, last_name, document and email.
Without arguments, or with "-", records are read from stdin.

With --normalize, whitespace in names is collapsed, emails are lowercased
and CPF punctuation is removed before validation.

The command fails when any record is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseInputFormat(format)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}
			return c.validate(cmd.Context(), cmd.OutOrStdout(), args, f, normalize)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format: auto, yaml or json")
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "clean up records before validating them")

	return cmd
}

// checked is one validated record.
type checked struct {
	Source   string           `json:"source"`
	Index    int              `json:"index"`
	Input    student.Record   `json:"input"`
	Details  student.Result   `json:"details"`
	Response student.Response `json:"response"`

	student *student.Student
}

type summaryJSON struct {
	Total       int `json:"total"`
	Valid       int `json:"valid"`
	Invalid     int `json:"invalid"`
	TotalErrors int `json:"totalErrors"`
}

type validateJSON struct {
	Students []checked   `json:"students"`
	Summary  summaryJSON `json:"summary"`
}

func (c *cli) validate(ctx context.Context, w io.Writer, sources []string, format inputFormat, normalize bool) error {
	a := c.app
	opt := student.WithMessages(a.messages)

	var all []checked
	for _, source := range sources {
		records, err := c.readSource(source, format)
		if err != nil {
			return err
		}
		a.logger.DebugContext(ctx, "records read", logger.Source(source), logger.Count(len(records)))

		for i, record := range records {
			if normalize {
				record = record.Normalized()
			}
			s := record.Student(opt)
			if !s.IsValid() {
				a.logger.DebugContext(ctx, "invalid record",
					logger.Source(source),
					slog.Int("index", i+1),
					slog.String("document", cpf.Mask(record.Document)),
					slog.String("email", sanitizer.MaskEmail(record.Email)),
					slog.Int("errors", s.TotalErrors()),
				)
			}
			all = append(all, checked{
				Source:   source,
				Index:    i + 1,
				Input:    record,
				Details:  s.ValidateWithDetails(),
				Response: s.Response(),
				student:  s,
			})
		}
	}

	students := make([]*student.Student, 0, len(all))
	for _, ch := range all {
		students = append(students, ch.student)
	}
	summary := student.Summarize(students)

	p := newPrinter(w)
	if a.output == outputJSON {
		if all == nil {
			all = []checked{}
		}
		p.json(validateJSON{
			Students: all,
			Summary: summaryJSON{
				Total:       summary.Total(),
				Valid:       len(summary.Valid),
				Invalid:     len(summary.Invalid),
				TotalErrors: summary.TotalErrors(),
			},
		})
	} else {
		c.printChecked(p, all, summary)
	}
	if p.err != nil {
		return p.err
	}

	a.logger.InfoContext(ctx, "validation finished",
		logger.Count(summary.Total()),
		logger.Outcome(len(summary.Valid), len(summary.Invalid)),
	)

	if len(summary.Invalid) > 0 {
		return fmt.Errorf("%w: %d of %d students", errInvalidData, len(summary.Invalid), summary.Total())
	}
	return nil
}

func (c *cli) readSource(source string, format inputFormat) ([]student.Record, error) {
	if source == stdinName {
		return readRecords(c.stdin, formatFor("", format))
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, errors.Join(errReadingInput, err)
	}
	defer f.Close()

	records, err := readRecords(f, formatFor(source, format))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return records, nil
}

func (c *cli) printChecked(p *printer, all []checked, summary student.Summary) {
	a := c.app
	multiple := len(sourcesOf(all)) > 1
	for i, ch := range all {
		if i > 0 {
			p.blank()
		}
		name := ch.student.Name().String()
		if multiple {
			name += " (" + ch.Source + ")"
		}
		p.line(0, fmt.Sprintf("%d. %s", i+1, name))
		p.line(1, a.text("cli.valid", "%{subject} valid? %{value}",
			"subject", a.text("cli.subjects.student", "Student"),
			"value", a.yesNo(ch.Details.Valid)))
		for _, msg := range ch.student.Errors() {
			p.line(1, a.text("cli.item", "- %{text}", "text", msg))
		}
	}

	if len(all) > 0 {
		p.blank()
	}
	p.line(0, a.text("cli.report.total", "Students: %{count}", "count", strconv.Itoa(summary.Total())))
	p.line(0, a.text("cli.report.valid", "Valid: %{count}", "count", strconv.Itoa(len(summary.Valid))))
	p.line(0, a.text("cli.report.invalid", "Invalid: %{count}", "count", strconv.Itoa(len(summary.Invalid))))
	if len(summary.Invalid) > 0 {
		p.line(0, a.text("cli.report.total_errors", "Total errors: %{count}", "count", strconv.Itoa(summary.TotalErrors())))
	}
}

func sourcesOf(all []checked) map[string]bool {
	sources := make(map[string]bool)
	for _, ch := range all {
		sources[ch.Source] = true
	}
	return sources
}
