package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser converts file content into a catalog keyed by language.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext, given
	// with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// splitLanguages turns the decoded top-level map into per-language catalogs.
func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := asStringMap(val)
		if !ok {
			return nil, &StructureError{Lang: lang, Got: val}
		}
		result[lang] = transMap
	}
	return result, nil
}
