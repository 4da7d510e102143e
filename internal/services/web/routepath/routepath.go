// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root               = "/"
	Health             = "/up"
	Metrics            = "/metrics"
	StaticPrefix       = "/static/"
	Stylesheet         = StaticPrefix + "app.css"
	Logout             = "/logout"
	AuthPrefix         = "/auth/"
	AuthLogin          = "/auth/login"
	DashboardPrefix    = "/dashboard/"
	Dashboard          = "/dashboard"
	PortfolioPrefix    = "/portfolio/"
	Portfolio          = "/portfolio"
	TransactionsPrefix = "/transactions/"
	Transactions       = "/transactions"
	SettingsPrefix     = "/settings/"
	Settings           = "/settings"
	SettingsAPI        = "/settings/api"
)

const (
	// PageSizeQueryKey selects the holdings grid page size.
	PageSizeQueryKey = "size"
	// PageQueryKey selects the holdings grid page.
	PageQueryKey = "page"
)

// PortfolioPage returns the holdings route for one page and page size.
func PortfolioPage(page, size int) string {
	values := url.Values{}
	if size > 0 {
		values.Set(PageSizeQueryKey, strconv.Itoa(size))
	}
	if page > 1 {
		values.Set(PageQueryKey, strconv.Itoa(page))
	}
	if len(values) == 0 {
		return Portfolio
	}
	return Portfolio + "?" + values.Encode()
}
