// Package i18n resolves the request language and formats localized copy,
// money, and percentages for web pages.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "portfolio_lang"
)

var supported = []language.Tag{language.AmericanEnglish, language.Czech}

var matcher = language.NewMatcher(supported)

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the fallback language.
func Default() language.Tag {
	return supported[0]
}

// Localizer prints catalog messages for one language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag))
}

// Match maps any tag onto the closest supported language.
func Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}

// ResolveTag picks the request language from the lang query parameter, then
// the language cookie, then Accept-Language. The bool reports whether the
// query parameter chose it and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			return Match(tag), true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, err := language.Parse(cookie.Value); err == nil {
			return Match(tag), false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...), false
		}
	}
	return Default(), false
}

// SetLanguageCookie persists tag for a year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Resolve resolves the request language, persisting an explicit choice, and
// returns its printer.
func Resolve(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag
}
