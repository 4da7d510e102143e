package publicauth

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

type loginForm struct {
	Action    string
	FromParam string
	From      string
	Email     string
	ErrorKey  string
}

func landingView(loc templates.Localizer, loginPath string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="hero" id="landing"><h1>`)
		hw.Text(templates.T(loc, "landing.headline"))
		hw.Raw(`</h1><p class="lead">`)
		hw.Text(templates.T(loc, "landing.tagline"))
		hw.Raw(`</p><div class="hero-actions"><a class="button"`)
		hw.Attr("href", loginPath)
		hw.Raw(">")
		hw.Text(templates.T(loc, "landing.get_started"))
		hw.Raw(`</a><a class="button button-ghost"`)
		hw.Attr("href", loginPath)
		hw.Raw(">")
		hw.Text(templates.T(loc, "public.sign_in"))
		hw.Raw(`</a></div><ul class="features">`)
		for _, key := range []string{"landing.feature.tracking", "landing.feature.allocation", "landing.feature.history"} {
			hw.Raw("<li>")
			hw.Text(templates.T(loc, key))
			hw.Raw("</li>")
		}
		hw.Raw("</ul></section>")
		return hw.Err()
	})
}

func loginView(loc templates.Localizer, form loginForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="card auth-card" id="login"><h1>`)
		hw.Text(templates.T(loc, "login.heading"))
		hw.Raw("</h1>")
		if form.ErrorKey != "" {
			hw.Raw(`<p class="form-error" role="alert">`)
			hw.Text(templates.T(loc, form.ErrorKey))
			hw.Raw("</p>")
		}
		hw.Raw(`<form class="form" method="post"`)
		hw.Attr("action", form.Action)
		hw.Raw(">")
		if form.From != "" {
			hw.Raw(`<input type="hidden"`)
			hw.Attr("name", form.FromParam)
			hw.Attr("value", form.From)
			hw.Raw(">")
		}
		hw.Raw(`<label class="field"><span>`)
		hw.Text(templates.T(loc, "login.email"))
		hw.Raw(`</span><input type="email" name="email" autocomplete="username" required`)
		hw.Attr("value", form.Email)
		hw.Raw(`></label><label class="field"><span>`)
		hw.Text(templates.T(loc, "login.password"))
		hw.Raw(`</span><input type="password" name="password" autocomplete="current-password" required></label>`)
		hw.Raw(`<button type="submit" class="button">`)
		hw.Text(templates.T(loc, "login.submit"))
		hw.Raw("</button></form></section>")
		return hw.Err()
	})
}
