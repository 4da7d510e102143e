package portfolio

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Portfolio, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PortfolioPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.PortfolioPrefix+"{rest...}", h.WriteNotFound)
}
