// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/i18n"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/flash"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/preferences"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
	"github.com/louisbranch/portfolio.space/internal/services/web/shell"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Context carries the request-scoped inputs every page render needs.
type Context struct {
	Loc   *message.Printer
	Lang  language.Tag
	Prefs preferences.Preferences
	State session.State
}

// Resolve builds the render context for r. An explicit language choice is
// persisted as a side effect.
func Resolve(w http.ResponseWriter, r *http.Request, deps module.Dependencies) Context {
	loc, lang := i18n.Resolve(w, r)
	return Context{
		Loc:   loc,
		Lang:  lang,
		Prefs: preferences.Read(r),
		State: deps.SessionState(r),
	}
}

// Localizer returns Loc, or nil when no printer was resolved.
func (c Context) Localizer() templates.Localizer {
	if c.Loc == nil {
		return nil
	}
	return c.Loc
}

// LangCode returns the document language, empty when unresolved.
func (c Context) LangCode() string {
	if c.Lang == language.Und {
		return ""
	}
	return c.Lang.String()
}

// Theme maps preferences onto the document theme.
func (c Context) Theme() templates.Theme {
	if c.Prefs.DarkMode {
		return templates.ThemeDark
	}
	return templates.ThemeLight
}

// Money formats amount in the visitor's display currency.
func (c Context) Money(amount float64) string {
	return i18n.Money(c.printer(), amount, c.Prefs.Currency)
}

// SignedMoney is Money with an explicit sign.
func (c Context) SignedMoney(amount float64) string {
	return i18n.SignedMoney(c.printer(), amount, c.Prefs.Currency)
}

// Percent formats value as a percentage.
func (c Context) Percent(value float64) string {
	return i18n.Percent(c.printer(), value)
}

// SignedPercent is Percent with an explicit sign.
func (c Context) SignedPercent(value float64) string {
	return i18n.SignedPercent(c.printer(), value)
}

// Quantity formats a share count.
func (c Context) Quantity(value float64) string {
	return i18n.Quantity(c.printer(), value)
}

func (c Context) printer() *message.Printer {
	if c.Loc == nil {
		return i18n.Printer(i18n.Default())
	}
	return c.Loc
}

// AppPage describes a protected page rendered inside the shell.
type AppPage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// WriteAppPage renders page inside the protected shell. The shell renders
// nothing without a present session; that case is answered with an empty
// 401 so protected content is never written.
func WriteAppPage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, pc Context, page AppPage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if _, ok := pc.State.Session(); !ok {
		statusCode = http.StatusUnauthorized
	}

	var component templ.Component
	if httpx.IsHTMXRequest(r) {
		component = shell.Fragment(pc.State, page.Fragment)
	} else {
		component = shell.Render(pc.State, shell.Page{
			Title:       page.Title,
			CurrentPath: requestPath(r),
			Lang:        pc.LangCode(),
			Theme:       pc.Theme(),
			Loc:         pc.Localizer(),
			Toast:       takeToast(w, r, deps, pc),
		}, page.Fragment)
	}

	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// PublicPage describes a page rendered outside the shell.
type PublicPage struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

// WritePublicPage renders page with the public layout.
func WritePublicPage(w http.ResponseWriter, r *http.Request, pc Context, page PublicPage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		main := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return templates.PublicLayout(pc.Localizer()).Render(templ.WithChildren(ctx, body), w)
		})
		doc := templates.Document(templates.DocumentOptions{
			Title:     page.Title,
			Lang:      pc.LangCode(),
			Theme:     pc.Theme(),
			BodyClass: "public",
		})
		if err := doc.Render(templ.WithChildren(ctx, main), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func takeToast(w http.ResponseWriter, r *http.Request, deps module.Dependencies, pc Context) *templates.Toast {
	if _, ok := pc.State.Session(); !ok {
		return nil
	}
	notice, ok := flash.Take(w, r, deps.RequestMeta)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(templates.T(pc.Localizer(), notice.Key))
	if message == "" {
		return nil
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: message}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
