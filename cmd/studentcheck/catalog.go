package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [LANG]",
		Short: "Print the message catalog of a language as JSON",
		Long: `Print the merged message catalog (embedded texts plus STUDENTCHECK_LOCALES_DIR)
as JSON. Use it as a starting point for a translation override file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr := c.app.messages.Translator()
			lang := c.app.messages.Lang()
			if len(args) == 1 {
				lang = tr.Resolve(args[0])
			}

			catalog, err := tr.ExportJSON(lang)
			if err != nil {
				return err
			}
			// The catalog is keyed by language so it can be used as a locale file.
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "{\n  %q: %s\n}\n", lang, indent(catalog))
			return err
		},
	}
}

// indent shifts every line after the first by two spaces.
func indent(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		if s[i] == '\n' {
			out = append(out, ' ', ' ')
		}
	}
	return string(out)
}
