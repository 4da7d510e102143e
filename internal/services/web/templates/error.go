package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// ErrorPageTitle returns the localized title for statusCode.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	switch statusCode {
	case http.StatusNotFound:
		return T(loc, "error.not_found.title")
	case http.StatusForbidden:
		return T(loc, "error.forbidden.title")
	default:
		return T(loc, "error.server.title")
	}
}

// ErrorState renders the body of an error page.
func ErrorState(statusCode int, message string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<section class="error-state" id="app-error-state"><h1>`)
		hw.Text(ErrorPageTitle(statusCode, loc))
		hw.Raw("</h1>")
		if message != "" {
			hw.Raw("<p>")
			hw.Text(message)
			hw.Raw("</p>")
		}
		hw.Raw("<a")
		hw.Attr("href", routepath.Dashboard)
		hw.Raw(">")
		hw.Text(T(loc, "error.back_to_dashboard"))
		hw.Raw("</a></section>")
		return hw.Err()
	})
}
