package transactions

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
)

func transactionsView(pc pagerender.Context, rows []Transaction, form transactionForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loc := pc.Localizer()
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="card" id="transactions"><h1>`)
		hw.Text(templates.T(loc, "transactions.title"))
		hw.Raw("</h1>")
		entryForm(hw, loc, form)

		templates.TableStart(hw, loc, "transaction-grid",
			templates.Column{Key: "transactions.column.date"},
			templates.Column{Key: "transactions.column.type"},
			templates.Column{Key: "transactions.column.symbol"},
			templates.Column{Key: "transactions.column.shares", Numeric: true},
			templates.Column{Key: "transactions.column.price", Numeric: true},
			templates.Column{Key: "transactions.column.total", Numeric: true},
		)
		for _, row := range rows {
			hw.Raw("<tr>")
			templates.Cell(hw, "", row.Date.Format(time.DateOnly))
			templates.Cell(hw, "type-"+typeClass(row.Type), row.Type)
			templates.Cell(hw, "symbol", row.Symbol)
			templates.Cell(hw, "num", pc.Quantity(row.Shares))
			templates.Cell(hw, "num", pc.Money(row.Price))
			templates.Cell(hw, "num", pc.Money(row.Total))
			hw.Raw("</tr>")
		}
		templates.TableEnd(hw)
		hw.Raw("</section>")
		return hw.Err()
	})
}

func entryForm(hw *templates.Writer, loc templates.Localizer, form transactionForm) {
	hw.Raw(`<details class="entry" id="add-transaction"`)
	hw.BoolAttr("open", form.hasErrors())
	hw.Raw("><summary class=\"button\">")
	hw.Text(templates.T(loc, "transactions.add"))
	hw.Raw(`</summary><form class="form form-grid" method="post"`)
	hw.Attr("action", routepath.Transactions)
	hw.Raw(">")

	field(hw, loc, form, "type", "transactions.column.type", func() {
		hw.Raw(`<select name="type">`)
		for _, option := range []struct{ value, key string }{
			{"BUY", "transactions.type.buy"},
			{"SELL", "transactions.type.sell"},
		} {
			hw.Raw("<option")
			hw.Attr("value", option.value)
			hw.BoolAttr("selected", form.Type == option.value)
			hw.Raw(">")
			hw.Text(templates.T(loc, option.key))
			hw.Raw("</option>")
		}
		hw.Raw("</select>")
	})
	field(hw, loc, form, "symbol", "transactions.column.symbol", func() {
		hw.Raw(`<input type="text" name="symbol" placeholder="AAPL" maxlength="10" required`)
		hw.Attr("value", form.Symbol)
		hw.Raw(">")
	})
	field(hw, loc, form, "shares", "transactions.column.shares", func() {
		hw.Raw(`<input type="number" name="shares" step="any" min="0" required`)
		hw.Attr("value", form.Shares)
		hw.Raw(">")
	})
	field(hw, loc, form, "price", "transactions.column.price", func() {
		hw.Raw(`<input type="number" name="price" step="0.01" min="0" required`)
		hw.Attr("value", form.Price)
		hw.Raw(">")
	})
	field(hw, loc, form, "date", "transactions.column.date", func() {
		hw.Raw(`<input type="date" name="date" required`)
		hw.Attr("value", form.Date)
		hw.Raw(">")
	})
	hw.Raw(`<button type="submit" class="button">`)
	hw.Text(templates.T(loc, "transactions.submit"))
	hw.Raw("</button></form></details>")
}

func field(hw *templates.Writer, loc templates.Localizer, form transactionForm, name, labelKey string, control func()) {
	hw.Raw(`<label class="field"><span>`)
	hw.Text(templates.T(loc, labelKey))
	hw.Raw("</span>")
	control()
	if key := form.Errors[name]; key != "" {
		hw.Raw(`<small class="field-error" role="alert"`)
		hw.Attr("id", "error-"+name)
		hw.Raw(">")
		hw.Text(templates.T(loc, key))
		hw.Raw("</small>")
	}
	hw.Raw("</label>")
}

func typeClass(side string) string {
	if side == "SELL" {
		return "sell"
	}
	return "buy"
}
