package dashboard

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

func dashboardView(pc pagerender.Context, view DashboardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loc := pc.Localizer()
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="dashboard" id="dashboard"><h1>`)
		hw.Text(templates.T(loc, "dashboard.title"))
		hw.Raw(`</h1><div class="cards">`)

		hw.Raw(`<article class="card stat" id="dashboard-total"><h2>`)
		hw.Text(templates.T(loc, "dashboard.total_value"))
		hw.Raw(`</h2><p class="stat-value">`)
		hw.Text(pc.Money(view.TotalValue))
		hw.Raw(`</p><p class="stat-change `, templates.SignClass(view.DailyChange), `">`)
		hw.Text(templates.T(loc, "dashboard.daily_change"))
		hw.Raw(": ")
		hw.Text(pc.SignedMoney(view.DailyChange) + " (" + pc.SignedPercent(view.DailyChangePercent) + ")")
		hw.Raw(`</p></article>`)

		hw.Raw(`<article class="card stat" id="dashboard-gain"><h2>`)
		hw.Text(templates.T(loc, "dashboard.total_gain"))
		hw.Raw(`</h2><p class="stat-value `, templates.SignClass(view.TotalGain), `">`)
		hw.Text(pc.SignedMoney(view.TotalGain))
		hw.Raw(`</p></article></div>`)

		hw.Raw(`<article class="card" id="dashboard-allocation"><h2>`)
		hw.Text(templates.T(loc, "dashboard.allocation"))
		hw.Raw("</h2>")
		templates.TableStart(hw, loc, "allocation",
			templates.Column{Key: "dashboard.column.asset"},
			templates.Column{Key: "dashboard.column.value", Numeric: true},
			templates.Column{Key: "dashboard.column.share", Numeric: true},
		)
		for _, row := range view.Allocation {
			hw.Raw("<tr>")
			templates.Cell(hw, "", row.Asset)
			templates.Cell(hw, "num", pc.Money(row.Value))
			hw.Raw(`<td class="num"><span class="bar"`)
			hw.Attr("style", "--share:"+pc.Percent(row.Share))
			hw.Raw("></span>")
			hw.Text(pc.Percent(row.Share))
			hw.Raw("</td></tr>")
		}
		templates.TableEnd(hw)
		hw.Raw("</article>")

		hw.Raw(`<article class="card" id="dashboard-recent"><h2>`)
		hw.Text(templates.T(loc, "dashboard.recent_transactions"))
		hw.Raw("</h2>")
		templates.TableStart(hw, loc, "recent-transactions",
			templates.Column{Key: "transactions.column.date"},
			templates.Column{Key: "transactions.column.type"},
			templates.Column{Key: "transactions.column.symbol"},
			templates.Column{Key: "transactions.column.total", Numeric: true},
		)
		for _, trade := range view.Recent {
			hw.Raw("<tr>")
			templates.Cell(hw, "", trade.Date.Format(time.DateOnly))
			templates.Cell(hw, "", trade.Type)
			templates.Cell(hw, "", trade.Symbol)
			templates.Cell(hw, "num", pc.Money(trade.Total))
			hw.Raw("</tr>")
		}
		templates.TableEnd(hw)
		hw.Raw(`<a class="link"`)
		hw.Attr("href", routepath.Transactions)
		hw.Raw(">")
		hw.Text(templates.T(loc, "dashboard.view_all"))
		hw.Raw("</a></article></section>")
		return hw.Err()
	})
}
