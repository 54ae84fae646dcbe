package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps a language code to its nested translation tree.
type Catalog map[string]map[string]any

// ParseYAML parses a document whose top-level keys are language codes:
//
//	fr:
//	  validation:
//	    empty: "%{field} est obligatoire"
func ParseYAML(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(Catalog, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[strings.ToLower(lang)] = tree
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// LoadFS parses every .yaml and .yml file of fsys matching pattern and merges
// them. Languages defined in several files are merged key by key; later
// files win.
func LoadFS(ctx context.Context, fsys fs.FS, pattern string) (Catalog, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	merged := make(Catalog)
	for _, name := range names {
		if ext := path.Ext(name); ext != ".yaml" && ext != ".yml" {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}
		catalog, err := ParseYAML(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, tree := range catalog {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any)
			}
			mergeTree(merged[lang], tree)
		}
	}
	if len(merged) == 0 {
		return nil, ErrNoTranslations
	}
	return merged, nil
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				mergeTree(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}
