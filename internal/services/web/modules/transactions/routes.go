package transactions

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Transactions, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.TransactionsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Transactions, h.handleCreate)
	mux.HandleFunc(routepath.TransactionsPrefix+"{rest...}", h.WriteNotFound)
}
