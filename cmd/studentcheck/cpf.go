package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/studentcheck/pkg/cpf"
)

func newCPFCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpf",
		Short: "Check CPF numbers and compute check digits",
	}
	cmd.AddCommand(newCPFCheckCommand(c), newCPFDigitsCommand(c))
	return cmd
}

// cpfResult is the outcome for one argument of the cpf commands.
type cpfResult struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted,omitempty"`
	Digits    string `json:"digits,omitempty"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
}

func newCPFCheckCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check CPF...",
		Short: "Validate CPF numbers, with or without punctuation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]cpfResult, 0, len(args))
			for _, arg := range args {
				err := cpf.Check(arg)
				results = append(results, cpfResult{
					Input:     arg,
					Formatted: cpf.Format(arg),
					Valid:     err == nil,
					Reason:    c.cpfReason(err),
				})
			}
			return c.printCPF(cmd, results, func(r cpfResult) string {
				if r.Valid {
					return c.app.text("cli.cpf.valid", "%{cpf}: valid", "cpf", r.Formatted)
				}
				return c.app.text("cli.cpf.invalid", "%{cpf}: invalid (%{reason})", "cpf", r.Input, "reason", r.Reason)
			})
		},
	}
}

func newCPFDigitsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "digits BASE...",
		Short: "Compute the two check digits of nine digit CPF bases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]cpfResult, 0, len(args))
			for _, arg := range args {
				digits, err := cpf.CheckDigits(arg)
				r := cpfResult{Input: arg, Digits: digits, Valid: err == nil, Reason: c.cpfReason(err)}
				if err == nil {
					r.Formatted = cpf.Format(cpf.Strip(arg) + digits)
				}
				results = append(results, r)
			}
			return c.printCPF(cmd, results, func(r cpfResult) string {
				if r.Valid {
					return c.app.text("cli.cpf.digits", "Check digits of %{base}: %{digits} (%{cpf})",
						"base", r.Input, "digits", r.Digits, "cpf", r.Formatted)
				}
				return c.app.text("cli.cpf.invalid", "%{cpf}: invalid (%{reason})", "cpf", r.Input, "reason", r.Reason)
			})
		},
	}
}

func (c *cli) printCPF(cmd *cobra.Command, results []cpfResult, line func(cpfResult) string) error {
	p := newPrinter(cmd.OutOrStdout())
	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
		if c.app.output == outputText {
			p.line(0, line(r))
		}
	}
	if c.app.output == outputJSON {
		p.json(results)
	}
	if p.err != nil {
		return p.err
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d numbers", errInvalidData, invalid, len(results))
	}
	return nil
}

// cpfReason returns the localized reason for a cpf package error.
func (c *cli) cpfReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, cpf.ErrInvalidLength):
		return c.app.text("cli.cpf.reasons.length", "must have 11 digits")
	case errors.Is(err, cpf.ErrRepeatedDigits):
		return c.app.text("cli.cpf.reasons.repeated_digits", "all digits are equal")
	case errors.Is(err, cpf.ErrInvalidChecksum):
		return c.app.text("cli.cpf.reasons.checksum", "check digits do not match")
	case errors.Is(err, cpf.ErrInvalidBase):
		return c.app.text("cli.cpf.reasons.base", "base must have 9 digits")
	}
	return err.Error()
}
