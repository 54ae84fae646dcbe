// Package i18n translates user-facing messages, in particular validation
// errors, into French and English.
//
// Catalogues are YAML documents keyed by language (see locales/), parsed with
// gopkg.in/yaml.v3. Keys are dot-separated paths and templates use "%{name}"
// placeholders:
//
//	catalog, err := i18n.LoadDefault(ctx)
//	tr, err := i18n.NewTranslator(catalog, i18n.WithDefaultLanguage("fr"))
//	msg := tr.T(i18n.GetLocale(ctx), "validation.below_min_age", map[string]any{"min_age": 11})
//
// A missing key falls back to the default language, then to the key itself.
//
// The request language is negotiated by Middleware using
// golang.org/x/text/language, with a "?lang=" query parameter taking
// precedence over Accept-Language.
package i18n
