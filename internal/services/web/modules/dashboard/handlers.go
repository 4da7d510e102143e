package dashboard

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps), service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	pc := h.PageContext(w, r)
	ctx, err := h.GatewayContext(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view, err := h.service.loadDashboard(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pc, templates.T(pc.Localizer(), "dashboard.title"), http.StatusOK, dashboardView(pc, view))
}
