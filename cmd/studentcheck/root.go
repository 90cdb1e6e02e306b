package main

import (
	"io"

	"github.com/spf13/cobra"
)

// cli carries the process streams and the global flags into commands.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// environ replaces the process environment when not nil.
	environ map[string]string

	envFile string
	locale  string
	output  string

	app *app
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer, environ map[string]string) *cli {
	return &cli{stdin: stdin, stdout: stdout, stderr: stderr, environ: environ}
}

func newRootCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studentcheck",
		Short: "Validate student registrations and Brazilian CPF numbers",
		Long: `studentcheck validates student records (name, email and CPF) and reports
every failing rule. Messages are available in Brazilian Portuguese and English.

Configuration is read from the environment and an optional dotenv file:
  APP_ENV, LOG_LEVEL, LOG_FORMAT, STUDENTCHECK_LOCALE,
  STUDENTCHECK_LOCALES_DIR, STUDENTCHECK_OUTPUT`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file with configuration, skipped when missing")
	flags.StringVarP(&c.locale, "locale", "l", "", "message language, e.g. pt-BR or en")
	flags.StringVarP(&c.output, "output", "o", "", "output format: text or json")

	cmd.SetIn(c.stdin)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	cmd.AddCommand(
		newDemoCommand(c),
		newValidateCommand(c),
		newCPFCommand(c),
		newCatalogCommand(c),
	)

	return cmd
}

// setup loads configuration, applies flag overrides and builds the app.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.envFile, c.environ)
	if err != nil {
		return err
	}
	if c.locale != "" {
		cfg.Locale = c.locale
	}
	if c.output != "" {
		cfg.Output = c.output
	}

	a, err := newApp(cmd.Context(), cfg, c)
	if err != nil {
		return err
	}
	c.app = a

	ctx := a.context(cmd.Context())
	cmd.SetContext(ctx)
	a.logger.DebugContext(ctx, "command started", "command", cmd.CommandPath())
	return nil
}
