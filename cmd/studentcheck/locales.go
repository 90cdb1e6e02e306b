package main

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/studentcheck/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// localesAdapter serves the console texts, merged on top of the student
// catalog.
func localesAdapter() i18n.TranslationAdapter {
	sub, _ := fs.Sub(locales, "locales")
	return i18n.NewFSAdapter(sub, ".")
}
