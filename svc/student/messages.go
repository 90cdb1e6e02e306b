package student

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/studentcheck/pkg/i18n"
	"github.com/dmitrymomot/studentcheck/pkg/validator"
)

// DefaultLanguage is the language of messages when none is requested.
const DefaultLanguage = "pt-BR"

//go:embed locales/*.yaml
var locales embed.FS

// Locales returns the embedded message catalog files.
func Locales() fs.FS {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		panic(fmt.Sprintf("student: embedded locales: %v", err))
	}
	return sub
}

// LocalesAdapter returns a translation adapter serving the embedded catalog.
func LocalesAdapter() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(Locales(), ".")
}

// Messages renders validation failures in one language.
// A nil *Messages renders the untranslated default messages.
type Messages struct {
	translator *i18n.Translator
	lang       string
}

// NewMessages binds translator to lang. The language is resolved against the
// catalog, so "pt" or "pt_BR.UTF-8" are served by "pt-BR".
func NewMessages(translator *i18n.Translator, lang string) *Messages {
	if translator == nil {
		return nil
	}
	return &Messages{translator: translator, lang: translator.Resolve(lang)}
}

// LoadMessages builds Messages from the embedded catalog merged with extra
// adapters, which override embedded keys.
func LoadMessages(ctx context.Context, lang string, extra []i18n.TranslationAdapter, opts ...i18n.Option) (*Messages, error) {
	adapters := append([]i18n.TranslationAdapter{LocalesAdapter()}, extra...)
	opts = append([]i18n.Option{i18n.WithDefaultLanguage(DefaultLanguage)}, opts...)

	translator, err := i18n.NewTranslator(ctx, i18n.NewMergeAdapter(adapters...), opts...)
	if err != nil {
		return nil, fmt.Errorf("student: load messages: %w", err)
	}
	return NewMessages(translator, lang), nil
}

var (
	defaultMessages     *Messages
	defaultMessagesOnce sync.Once
)

// DefaultMessages returns the embedded catalog in DefaultLanguage.
func DefaultMessages() *Messages {
	defaultMessagesOnce.Do(func() {
		m, err := LoadMessages(context.Background(), DefaultLanguage, nil, i18n.WithNoLogging())
		if err == nil {
			defaultMessages = m
		}
	})
	return defaultMessages
}

// Lang returns the resolved language, or an empty string for nil Messages.
func (m *Messages) Lang() string {
	if m == nil {
		return ""
	}
	return m.lang
}

func (m *Messages) Translator() *i18n.Translator {
	if m == nil {
		return nil
	}
	return m.translator
}

// Label returns the display name of a field identifier, or the identifier
// itself when the catalog has none.
func (m *Messages) Label(field string) string {
	if m == nil {
		return field
	}
	return m.translator.Td(m.lang, "fields."+field, field)
}

// Text translates key, formatting def when the key is missing.
func (m *Messages) Text(key, def string, args ...string) string {
	if m == nil {
		return i18n.Sprintf(def, args...)
	}
	return m.translator.Td(m.lang, key, def, args...)
}

// Render formats a validation failure. The "field" value is replaced by the
// field label.
func (m *Messages) Render(e validator.ValidationError) string {
	args := make([]string, 0, 2*len(e.TranslationValues))
	for _, k := range slices.Sorted(maps.Keys(e.TranslationValues)) {
		v := fmt.Sprint(e.TranslationValues[k])
		if k == "field" {
			v = m.Label(v)
		}
		args = append(args, k, v)
	}

	def := e.Message
	if _, ok := e.TranslationValues["field"]; ok {
		def = "%{field} " + def
	}
	return m.Text(e.TranslationKey, def, args...)
}

// RenderAll formats failures in order.
func (m *Messages) RenderAll(errs validator.ValidationErrors) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, m.Render(e))
	}
	return out
}
