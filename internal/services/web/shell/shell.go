// Package shell renders the protected application chrome. It renders nothing
// unless it is handed a present session, so protected content never reaches
// a visitor whose session is unresolved or absent.
package shell

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

const navToggleID = "shell-nav-toggle"

// NavItem is one entry of the navigation menu.
type NavItem struct {
	Key  string
	Path string
}

// Nav returns the fixed navigation menu.
func Nav() []NavItem {
	return []NavItem{
		{Key: "nav.dashboard", Path: routepath.Dashboard},
		{Key: "nav.portfolio", Path: routepath.Portfolio},
		{Key: "nav.transactions", Path: routepath.Transactions},
		{Key: "nav.settings", Path: routepath.Settings},
	}
}

// Page carries per-request chrome data.
type Page struct {
	Title       string
	CurrentPath string
	Lang        string
	Theme       templates.Theme
	Loc         templates.Localizer
	Toast       *templates.Toast
}

// Render returns the shell for state wrapped around content.
func Render(state session.State, page Page, content templ.Component) templ.Component {
	s, ok := state.Session()
	if !ok {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return renderChrome(ctx, w, s, page, content)
		})
		return templates.Document(templates.DocumentOptions{
			Title:     page.Title,
			Lang:      page.Lang,
			Theme:     page.Theme,
			BodyClass: "app",
			Toast:     page.Toast,
		}).Render(templ.WithChildren(ctx, body), w)
	})
}

// Fragment renders only the main content region for HTMX swaps. Like Render
// it produces nothing without a present session.
func Fragment(state session.State, content templ.Component) templ.Component {
	if _, ok := state.Session(); !ok || content == nil {
		return templ.NopComponent
	}
	return content
}

func renderChrome(ctx context.Context, w io.Writer, s session.Session, page Page, content templ.Component) error {
	hw := templates.NewWriter(w)
	hw.Raw(`<input type="checkbox" class="nav-toggle"`)
	hw.Attr("id", navToggleID)
	hw.Attr("aria-label", templates.T(page.Loc, "nav.toggle"))
	hw.Raw(`><div class="shell">`)

	hw.Raw(`<aside class="sidebar sidebar-permanent">`)
	writeBrand(hw)
	writeNav(hw, page)
	hw.Raw(`</aside>`)

	hw.Raw(`<aside class="sidebar sidebar-drawer"><div class="drawer-head">`)
	writeBrand(hw)
	hw.Raw(`<label class="drawer-close"`)
	hw.Attr("for", navToggleID)
	hw.Raw(">")
	hw.Text(templates.T(page.Loc, "nav.close"))
	hw.Raw(`</label></div>`)
	writeNav(hw, page)
	hw.Raw(`</aside><label class="drawer-backdrop"`)
	hw.Attr("for", navToggleID)
	hw.Raw(`></label>`)

	hw.Raw(`<div class="shell-body"><header class="topbar"><label class="nav-open"`)
	hw.Attr("for", navToggleID)
	hw.Raw(">")
	hw.Text(templates.T(page.Loc, "nav.menu"))
	hw.Raw(`</label><div class="account"><span class="account-name"`)
	hw.Attr("title", s.Email)
	hw.Raw(">")
	hw.Text(displayName(s))
	hw.Raw(`</span><form class="logout-form" method="post"`)
	hw.Attr("action", routepath.Logout)
	hw.Raw(`><button type="submit" class="button button-ghost">`)
	hw.Text(templates.T(page.Loc, "nav.logout"))
	hw.Raw(`</button></form></div></header><main class="content" id="main">`)
	hw.Render(ctx, content)
	hw.Raw(`</main></div></div>`)
	return hw.Err()
}

func writeBrand(hw *templates.Writer) {
	hw.Raw(`<a class="brand"`)
	hw.Attr("href", routepath.Dashboard)
	hw.Raw(">")
	hw.Text(templates.AppName)
	hw.Raw("</a>")
}

func writeNav(hw *templates.Writer, page Page) {
	hw.Raw(`<nav class="nav"><ul>`)
	for _, item := range Nav() {
		hw.Raw("<li><a")
		hw.Attr("href", item.Path)
		if isActive(page.CurrentPath, item.Path) {
			hw.Attr("class", "active")
			hw.Attr("aria-current", "page")
		}
		hw.Raw(">")
		hw.Text(templates.T(page.Loc, item.Key))
		hw.Raw("</a></li>")
	}
	hw.Raw("</ul></nav>")
}

func isActive(current, itemPath string) bool {
	return current == itemPath || strings.HasPrefix(current, itemPath+"/")
}

func displayName(s session.Session) string {
	if name := strings.TrimSpace(s.DisplayName); name != "" {
		return name
	}
	return s.Email
}
