package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// PublicLayout renders the header and main region used by pages outside the
// protected shell.
func PublicLayout(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<header class="public-header"><a class="brand"`)
		hw.Attr("href", routepath.Root)
		hw.Raw(">")
		hw.Text(AppName)
		hw.Raw(`</a><a class="button button-ghost"`)
		hw.Attr("href", routepath.AuthLogin)
		hw.Raw(">")
		hw.Text(T(loc, "public.sign_in"))
		hw.Raw(`</a></header><main class="public-main">`)
		hw.Children(ctx)
		hw.Raw("</main>")
		return hw.Err()
	})
}
