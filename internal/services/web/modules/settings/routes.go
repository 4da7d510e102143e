package settings

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Settings, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Settings, h.handlePreferencesPost)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsAPI, h.handleAPIPost)
	mux.HandleFunc(routepath.SettingsPrefix+"{rest...}", h.WriteNotFound)
}
