package settings

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/i18n"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/preferences"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

// settingsPage is the settings view model. The API secret is never echoed.
type settingsPage struct {
	Prefs            preferences.Preferences
	PreferencesError string
	APIKey           string
	APIError         string
}

func settingsView(pc pagerender.Context, page settingsPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loc := pc.Localizer()
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="settings" id="settings"><h1>`)
		hw.Text(templates.T(loc, "settings.title"))
		hw.Raw("</h1>")

		hw.Raw(`<article class="card" id="settings-preferences"><h2>`)
		hw.Text(templates.T(loc, "settings.preferences"))
		hw.Raw("</h2>")
		formError(hw, loc, page.PreferencesError)
		hw.Raw(`<form class="form" method="post"`)
		hw.Attr("action", routepath.Settings)
		hw.Raw(">")
		toggle(hw, loc, "dark_mode", "settings.dark_mode", page.Prefs.DarkMode)
		toggle(hw, loc, "email_notifications", "settings.email_notifications", page.Prefs.EmailNotifications)
		hw.Raw(`<label class="field"><span>`)
		hw.Text(templates.T(loc, "settings.currency"))
		hw.Raw(`</span><select name="currency">`)
		for _, currency := range i18n.Currencies() {
			hw.Raw("<option")
			hw.Attr("value", string(currency))
			hw.BoolAttr("selected", currency == page.Prefs.Currency)
			hw.Raw(">", string(currency), "</option>")
		}
		hw.Raw(`</select></label><button type="submit" class="button">`)
		hw.Text(templates.T(loc, "settings.save"))
		hw.Raw("</button></form></article>")

		hw.Raw(`<article class="card" id="settings-api"><h2>`)
		hw.Text(templates.T(loc, "settings.api.title"))
		hw.Raw("</h2>")
		formError(hw, loc, page.APIError)
		hw.Raw(`<form class="form" method="post" autocomplete="off"`)
		hw.Attr("action", routepath.SettingsAPI)
		hw.Raw(`><label class="field"><span>`)
		hw.Text(templates.T(loc, "settings.api.key"))
		hw.Raw(`</span><input type="password" name="api_key"`)
		hw.Attr("value", page.APIKey)
		hw.Raw(`></label><label class="field"><span>`)
		hw.Text(templates.T(loc, "settings.api.secret"))
		hw.Raw(`</span><input type="password" name="api_secret"></label><button type="submit" class="button">`)
		hw.Text(templates.T(loc, "settings.api.save"))
		hw.Raw("</button></form></article></section>")
		return hw.Err()
	})
}

func toggle(hw *templates.Writer, loc templates.Localizer, name, labelKey string, on bool) {
	hw.Raw(`<label class="switch"><input type="checkbox" role="switch" value="on"`)
	hw.Attr("name", name)
	hw.BoolAttr("checked", on)
	hw.Raw("><span>")
	hw.Text(templates.T(loc, labelKey))
	hw.Raw("</span></label>")
}

func formError(hw *templates.Writer, loc templates.Localizer, key string) {
	if key == "" {
		return
	}
	hw.Raw(`<p class="form-error" role="alert">`)
	hw.Text(templates.T(loc, key))
	hw.Raw("</p>")
}
