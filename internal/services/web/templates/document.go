// Package templates holds the shared HTML components for web pages.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// AppName is the product name shown in titles and chrome.
const AppName = "Portfolio"

// Theme selects the document color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toast is a one-time notice shown at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// DocumentOptions configures the outer HTML document.
type DocumentOptions struct {
	Title     string
	Lang      string
	Theme     Theme
	BodyClass string
	Toast     *Toast
}

// Document renders a complete HTML document around the children in ctx.
func Document(opts DocumentOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en-US"
		}
		theme := opts.Theme
		if theme != ThemeDark {
			theme = ThemeLight
		}
		hw.Raw("<!doctype html><html")
		hw.Attr("lang", lang)
		hw.Attr("data-theme", string(theme))
		hw.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw("<title>")
		hw.Text(PageTitle(opts.Title))
		hw.Raw("</title><link")
		hw.Attr("rel", "stylesheet")
		hw.Attr("href", routepath.Stylesheet)
		hw.Raw("></head><body")
		if opts.BodyClass != "" {
			hw.Attr("class", opts.BodyClass)
		}
		hw.Raw(">")
		if opts.Toast != nil && strings.TrimSpace(opts.Toast.Message) != "" {
			hw.Raw("<div")
			hw.Attr("class", "toast toast-"+opts.Toast.Kind)
			hw.Attr("role", "status")
			hw.Raw(">")
			hw.Text(opts.Toast.Message)
			hw.Raw("</div>")
		}
		hw.Children(ctx)
		hw.Raw("</body></html>")
		return hw.Err()
	})
}

// PageTitle appends the product name to title.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}
