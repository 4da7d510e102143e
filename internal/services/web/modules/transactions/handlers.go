package transactions

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/flash"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

const maxTransactionFormBytes = 16 << 10

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps), service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, h.service.blankForm(), http.StatusOK)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTransactionFormBytes)
	if err := r.ParseForm(); err != nil {
		h.renderIndex(w, r, h.service.blankForm(), http.StatusBadRequest)
		return
	}
	input, form := parseTransactionForm(transactionForm{
		Type:   r.PostForm.Get("type"),
		Symbol: r.PostForm.Get("symbol"),
		Shares: r.PostForm.Get("shares"),
		Price:  r.PostForm.Get("price"),
		Date:   r.PostForm.Get("date"),
	})
	if form.hasErrors() {
		h.renderIndex(w, r, form, http.StatusBadRequest)
		return
	}
	ctx, err := h.GatewayContext(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.service.recordTransaction(ctx, input); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.Transactions, flash.Success("transactions.notice.added"))
}

func (h handlers) renderIndex(w http.ResponseWriter, r *http.Request, form transactionForm, statusCode int) {
	pc := h.PageContext(w, r)
	ctx, err := h.GatewayContext(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	rows, err := h.service.listTransactions(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pc, templates.T(pc.Localizer(), "transactions.title"), statusCode, transactionsView(pc, rows, form))
}
