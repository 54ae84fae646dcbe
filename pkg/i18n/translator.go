package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// DefaultLanguage is used when neither the request nor the configuration
// names a supported language.
const DefaultLanguage = "fr"

// Translator resolves dot-separated keys in a Catalog. It is read-only after
// construction and safe for concurrent use.
type Translator struct {
	catalog     Catalog
	defaultLang string
	logger      *slog.Logger
	langs       []string
}

// Option is a function that configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one is not
// available or lacks a key.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger enables debug logging of missing keys.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator creates a translator over catalog.
func NewTranslator(catalog Catalog, opts ...Option) (*Translator, error) {
	if len(catalog) == 0 {
		return nil, ErrNoTranslations
	}
	t := &Translator{
		catalog:     catalog,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	for lang := range catalog {
		t.langs = append(t.langs, lang)
	}
	slices.Sort(t.langs)
	return t, nil
}

// SupportedLanguages returns the catalogue languages in sorted order.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Has reports whether lang defines key.
func (t *Translator) Has(lang, key string) bool {
	_, ok := lookup(t.catalog[lang], key)
	return ok
}

// T translates key into lang, substituting "%{name}" placeholders from
// values. Lookup falls back to the default language, then to the key itself.
//
//	t.T("fr", "validation.too_short", map[string]any{"field": "Nom", "min": 2})
//	// "Nom doit contenir au moins 2 caractères"
func (t *Translator) T(lang, key string, values map[string]any) string {
	tmpl, ok := lookup(t.catalog[strings.ToLower(lang)], key)
	if !ok {
		tmpl, ok = lookup(t.catalog[t.defaultLang], key)
	}
	if !ok {
		t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
		tmpl = key
	}
	return substitute(tmpl, values)
}

func lookup(tree map[string]any, key string) (string, bool) {
	if tree == nil {
		return "", false
	}
	parts := strings.Split(key, ".")
	current := tree
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := v.(string)
			return s, ok
		}
		if current, ok = v.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute keeps placeholders without a value as they are.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
