package publicauth

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

func registerShellRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(routepath.Logout, func(w http.ResponseWriter, _ *http.Request) {
		httpx.MethodNotAllowed(w, http.MethodPost)
	})
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}

func registerLoginRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	login := h.policy.LoginPath()
	mux.HandleFunc(http.MethodGet+" "+login, h.handleLoginPage)
	mux.HandleFunc(http.MethodPost+" "+login, h.handleLoginSubmit)
	mux.HandleFunc(h.policy.Config().AuthPrefix+"/", h.WriteNotFound)
}
