package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "en"

// Translator renders localized strings from a catalog loaded once at construction.
type Translator struct {
	translations   map[string]map[string]any
	languages      []string
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations from adapter and returns a Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.languages = make([]string, 0, len(translations))
	for lang := range translations {
		t.languages = append(t.languages, lang)
	}
	slices.Sort(t.languages)

	if len(t.languages) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
	}
	t.logger.DebugContext(ctx, "translations loaded",
		slog.Any("languages", t.languages),
		slog.String("default_language", t.defaultLang),
	)

	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations map for language %q", ErrInvalidStructure, lang)
		}
	}
	return nil
}

// SupportedLanguages returns the sorted language codes of the catalog.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Resolve returns the catalog language used to serve lang: an exact match,
// the closest supported language, or the default language.
func (t *Translator) Resolve(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	return MatchLanguage(lang, t.languages, t.defaultLang)
}

// HasTranslation reports whether key exists for the resolved language.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[t.Resolve(lang)]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as key/value pairs:
//
//	translator.T("en", "validation.min_length", "field", "Name", "min", "2")
//
// When no translation exists the key itself is formatted and returned, or an
// empty string if fallback to key is disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.template(lang, key)
	if !ok {
		if t.fallbackToKey {
			return Sprintf(key, args...)
		}
		return ""
	}
	return Sprintf(tmpl, args...)
}

// Td translates key like T but formats defaultValue when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.template(lang, key)
	if !ok {
		return Sprintf(defaultValue, args...)
	}
	return Sprintf(tmpl, args...)
}

// Tc translates key using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// ExportJSON returns the catalog of a language as JSON.
func (t *Translator) ExportJSON(lang string) (string, error) {
	translations, ok := t.translations[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}

	b, err := json.MarshalIndent(translations, "", "  ")
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}

	return string(b), nil
}

func (t *Translator) template(lang, key string) (string, bool) {
	resolved := t.Resolve(lang)
	langMap, ok := t.translations[resolved]
	if !ok {
		t.logMissing("language not supported", lang, key)
		return "", false
	}

	val, ok := lookup(langMap, key)
	if !ok {
		t.logMissing("translation not found", resolved, key)
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		t.logMissing("translation is not a string", resolved, key)
		return "", false
	}
}

func (t *Translator) logMissing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, slog.String("lang", lang), slog.String("key", key))
	}
}

// lookup traverses a nested map using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := asStringMap(val)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// asStringMap accepts both map[string]any and the map[any]any some YAML
// decoders produce for nested mappings.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Sprintf replaces %{name} placeholders in tmpl with values from args given as
// key/value pairs. Unknown placeholders are kept; an odd trailing arg is ignored.
func Sprintf(tmpl string, args ...string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
