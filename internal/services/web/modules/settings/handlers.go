package settings

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/flash"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/preferences"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

const maxSettingsFormBytes = 16 << 10

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps), service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	pc := h.PageContext(w, r)
	h.render(w, r, pc, settingsPage{Prefs: pc.Prefs}, http.StatusOK)
}

func (h handlers) handlePreferencesPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSettingsFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_input", "failed to parse preferences form"))
		return
	}
	form := preferencesForm{
		DarkMode:           r.PostForm.Get("dark_mode") != "",
		EmailNotifications: r.PostForm.Get("email_notifications") != "",
		Currency:           r.PostForm.Get("currency"),
	}
	prefs, err := parsePreferences(form)
	if err != nil {
		pc := h.PageContext(w, r)
		page := settingsPage{Prefs: pc.Prefs, PreferencesError: apperrors.LocalizationKey(err)}
		page.Prefs.DarkMode = form.DarkMode
		page.Prefs.EmailNotifications = form.EmailNotifications
		h.render(w, r, pc, page, apperrors.HTTPStatus(err))
		return
	}
	preferences.Write(w, r, prefs, h.Dependencies().RequestMeta)
	h.RedirectWithNotice(w, r, routepath.Settings, flash.Success("settings.notice.saved"))
}

func (h handlers) handleAPIPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSettingsFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_input", "failed to parse api settings form"))
		return
	}
	apiKey := r.PostForm.Get("api_key")
	ctx, err := h.GatewayContext(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.service.saveAPICredentials(ctx, apiKey, r.PostForm.Get("api_secret")); err != nil {
		if apperrors.HTTPStatus(err) == http.StatusBadRequest {
			pc := h.PageContext(w, r)
			h.render(w, r, pc, settingsPage{Prefs: pc.Prefs, APIKey: apiKey, APIError: apperrors.LocalizationKey(err)}, http.StatusBadRequest)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.Settings, flash.Success("settings.notice.api_saved"))
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, pc pagerender.Context, page settingsPage, statusCode int) {
	h.WritePage(w, r, pc, templates.T(pc.Localizer(), "settings.title"), statusCode, settingsView(pc, page))
}
