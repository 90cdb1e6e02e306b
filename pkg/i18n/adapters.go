package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// TranslationAdapter loads a catalog keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter reads a single catalog file. When parser is nil it is chosen
// from the file extension.
type FileAdapter struct {
	parser Parser
	path   string
}

func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	parser := a.parser
	if parser == nil {
		parser = NewParserForFile(a.path)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, a.path)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", a.path, err))
	}

	return translations, nil
}

// FSAdapter reads every YAML and JSON file in a directory of an fs.FS,
// typically an embed.FS. Files are processed in name order and merged, so a
// later file overrides keys of an earlier one.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// NewDirectoryAdapter reads catalog files from a directory on disk.
func NewDirectoryAdapter(dir string) *FSAdapter {
	return NewFSAdapter(os.DirFS(dir), ".")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, ErrNilAdapter
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	found := false

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}

		mergeCatalog(all, translations)
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationsFound, a.dir)
	}

	return all, nil
}

// MergeAdapter loads several adapters in order and deep merges the results.
// Nil adapters are skipped.
type MergeAdapter struct {
	Adapters []TranslationAdapter
}

func NewMergeAdapter(adapters ...TranslationAdapter) *MergeAdapter {
	return &MergeAdapter{Adapters: adapters}
}

func (a *MergeAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, adapter := range a.Adapters {
		if adapter == nil {
			continue
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeCatalog(all, translations)
	}
	return all, nil
}

func mergeCatalog(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeTree(dst[lang], translations)
	}
}

// mergeTree copies src into dst, descending into nested maps so individual
// leaves can be overridden without replacing whole sections.
func mergeTree(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := asStringMap(val)
		if !srcIsMap {
			dst[key] = val
			continue
		}

		dstMap, dstIsMap := asStringMap(dst[key])
		if !dstIsMap {
			dstMap = make(map[string]any, len(srcMap))
		} else {
			dstMap = cloneTree(dstMap)
		}
		mergeTree(dstMap, srcMap)
		dst[key] = dstMap
	}
}

func cloneTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := asStringMap(v); ok {
			out[k] = cloneTree(nested)
			continue
		}
		out[k] = v
	}
	return out
}
