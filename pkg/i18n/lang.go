package i18n

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

// Negotiator picks the best supported language for an Accept-Language header.
type Negotiator struct {
	matcher   language.Matcher
	supported []string
	fallback  string
}

// NewNegotiator builds a negotiator; fallback is returned when nothing matches.
// The fallback is always considered supported.
func NewNegotiator(supported []string, fallback string) *Negotiator {
	tags := make([]language.Tag, 0, len(supported)+1)
	names := make([]string, 0, len(supported)+1)
	add := func(lang string) {
		tag, err := language.Parse(lang)
		if err != nil {
			return
		}
		for _, n := range names {
			if n == lang {
				return
			}
		}
		tags = append(tags, tag)
		names = append(names, lang)
	}
	// The first tag is the matcher's default.
	add(fallback)
	for _, l := range supported {
		add(strings.ToLower(l))
	}
	return &Negotiator{
		matcher:   language.NewMatcher(tags),
		supported: names,
		fallback:  fallback,
	}
}

// Negotiate returns the supported language code matching header best, e.g.
// "en" for "en-GB,en;q=0.8" when English is supported.
func (n *Negotiator) Negotiate(header string) string {
	if header == "" || len(n.supported) == 0 {
		return n.fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return n.fallback
	}
	_, idx, conf := n.matcher.Match(prefs...)
	if conf == language.No {
		return n.fallback
	}
	return n.supported[idx]
}

// Supports reports whether lang is one of the negotiable languages.
func (n *Negotiator) Supports(lang string) bool {
	for _, s := range n.supported {
		if s == lang {
			return true
		}
	}
	return false
}

type localeContextKey struct{}

// SetLocale stores the request language in ctx.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// GetLocale returns the request language, or DefaultLanguage when unset.
func GetLocale(ctx context.Context) string {
	if lang, _ := ctx.Value(localeContextKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// LangQueryParam lets a user override the negotiated language with ?lang=.
const LangQueryParam = "lang"

// Middleware negotiates the request language from the "lang" query
// parameter or the Accept-Language header and stores it with SetLocale.
func Middleware(n *Negotiator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := strings.ToLower(r.URL.Query().Get(LangQueryParam))
			if !n.Supports(lang) {
				lang = n.Negotiate(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
