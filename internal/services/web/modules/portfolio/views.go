package portfolio

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/paging"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

var holdingColumns = []templates.Column{
	{Key: "portfolio.column.symbol"},
	{Key: "portfolio.column.name"},
	{Key: "portfolio.column.shares", Numeric: true},
	{Key: "portfolio.column.avg_price", Numeric: true},
	{Key: "portfolio.column.current_price", Numeric: true},
	{Key: "portfolio.column.market_value", Numeric: true},
	{Key: "portfolio.column.gain_loss", Numeric: true},
	{Key: "portfolio.column.gain_loss_pct", Numeric: true},
}

func holdingsView(pc pagerender.Context, view HoldingsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loc := pc.Localizer()
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="card" id="portfolio"><h1>`)
		hw.Text(templates.T(loc, "portfolio.title"))
		hw.Raw("</h1>")
		pageSizeForm(hw, pc, view.Window)

		if len(view.Rows) == 0 {
			hw.Raw(`<p class="empty">`)
			hw.Text(templates.T(loc, "portfolio.empty"))
			hw.Raw("</p></section>")
			return hw.Err()
		}

		templates.TableStart(hw, loc, "holdings", holdingColumns...)
		for _, row := range view.Rows {
			signClass := "num " + templates.SignClass(row.GainLoss)
			hw.Raw("<tr>")
			templates.Cell(hw, "symbol", row.Symbol)
			templates.Cell(hw, "", row.Name)
			templates.Cell(hw, "num", pc.Quantity(row.Shares))
			templates.Cell(hw, "num", pc.Money(row.AveragePrice))
			templates.Cell(hw, "num", pc.Money(row.CurrentPrice))
			templates.Cell(hw, "num", pc.Money(row.MarketValue))
			templates.Cell(hw, signClass, pc.SignedMoney(row.GainLoss))
			templates.Cell(hw, signClass, pc.SignedPercent(row.GainLossPercent))
			hw.Raw("</tr>")
		}
		templates.TableEnd(hw)
		pager(hw, pc, view.Window)
		hw.Raw("</section>")
		return hw.Err()
	})
}

func pageSizeForm(hw *templates.Writer, pc pagerender.Context, window paging.Window) {
	hw.Raw(`<form class="toolbar" method="get"`)
	hw.Attr("action", routepath.Portfolio)
	hw.Raw(`><label class="field-inline"><span>`)
	hw.Text(templates.T(pc.Localizer(), "portfolio.page_size"))
	hw.Raw(`</span><select`)
	hw.Attr("name", routepath.PageSizeQueryKey)
	hw.Raw(` onchange="this.form.submit()">`)
	for _, size := range paging.Sizes() {
		value := strconv.Itoa(size)
		hw.Raw("<option")
		hw.Attr("value", value)
		hw.BoolAttr("selected", size == window.Size)
		hw.Raw(">", value, "</option>")
	}
	hw.Raw(`</select></label><noscript><button type="submit" class="button button-ghost">OK</button></noscript></form>`)
}

func pager(hw *templates.Writer, pc pagerender.Context, window paging.Window) {
	loc := pc.Localizer()
	hw.Raw(`<nav class="pager" aria-label="pagination">`)
	if window.HasPrevious() {
		hw.Raw(`<a class="button button-ghost" rel="prev"`)
		hw.Attr("href", routepath.PortfolioPage(window.Page-1, window.Size))
		hw.Raw(">")
		hw.Text(templates.T(loc, "portfolio.previous"))
		hw.Raw("</a>")
	}
	hw.Raw(`<span class="pager-status">`)
	hw.Text(templates.T(loc, "portfolio.page_status", window.Page, window.Pages))
	hw.Raw("</span>")
	if window.HasNext() {
		hw.Raw(`<a class="button button-ghost" rel="next"`)
		hw.Attr("href", routepath.PortfolioPage(window.Page+1, window.Size))
		hw.Raw(">")
		hw.Text(templates.T(loc, "portfolio.next"))
		hw.Raw("</a>")
	}
	hw.Raw("</nav>")
}
