package portfolio

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/paging"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
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
	query := r.URL.Query()
	size := paging.ParseSize(query.Get(routepath.PageSizeQueryKey))
	page := paging.ParsePage(query.Get(routepath.PageQueryKey))
	view, err := h.service.listHoldings(ctx, page, size)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pc, templates.T(pc.Localizer(), "portfolio.title"), http.StatusOK, holdingsView(pc, view))
}
