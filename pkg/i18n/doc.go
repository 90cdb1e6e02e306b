// Package i18n loads message catalogs and renders localized strings with
// named placeholders.
//
// Catalogs are nested maps keyed by language tag at the top level:
//
//	pt-BR:
//	  validation:
//	    required: "%{field} não pode ser vazio"
//	en:
//	  validation:
//	    required: "%{field} must not be empty"
//
// Keys are addressed with dots ("validation.required") and placeholders use the
// %{name} form, filled from key/value argument pairs:
//
//	msg := translator.T("pt-BR", "validation.required", "field", "Nome")
//	// msg == "Nome não pode ser vazio"
//
// # Sources
//
// A Translator delegates loading to a TranslationAdapter. MapAdapter serves an
// in-memory map, FileAdapter and DirectoryAdapter read from disk, FSAdapter
// reads from any fs.FS (typically an embed.FS) and MergeAdapter layers several
// adapters so later sources override individual keys of earlier ones. YAML and
// JSON parsers are provided; NewParserForFile picks one by extension.
//
// # Language selection
//
// MatchLanguage picks the best supported language for a requested locale using
// golang.org/x/text/language matching, so "pt", "pt_BR.UTF-8" and "pt-br" all
// resolve to a catalog registered as "pt-BR".
//
// When a language is not in the catalog the translator falls back to its
// default language, then to the key itself (or an explicit default with Td).
//
// A Translator is immutable after construction and safe for concurrent use.
package i18n
