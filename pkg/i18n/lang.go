package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLocale converts POSIX style locale values such as "pt_BR.UTF-8" or
// "en_US@euro" to BCP 47 tags ("pt-BR", "en-US"). Unparseable input is
// returned trimmed but otherwise unchanged.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || strings.EqualFold(locale, "C") || strings.EqualFold(locale, "POSIX") {
		return ""
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}

// MatchLanguage returns the entry of supported that best serves requested,
// or defaultLang when nothing matches. Matching follows BCP 47 semantics:
// "pt" and "pt-PT" are served by "pt-BR" when that is the only Portuguese
// catalog, and region-less requests prefer the most likely region.
func MatchLanguage(requested string, supported []string, defaultLang string) string {
	requested = NormalizeLocale(requested)
	if requested == "" || len(supported) == 0 {
		return defaultLang
	}

	want, err := language.Parse(requested)
	if err != nil {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	index := make([]int, 0, len(supported))
	for i, s := range supported {
		if strings.EqualFold(s, requested) {
			return s
		}
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		index = append(index, i)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, i, confidence := language.NewMatcher(tags).Match(want)
	if confidence == language.No {
		return defaultLang
	}
	return supported[index[i]]
}
