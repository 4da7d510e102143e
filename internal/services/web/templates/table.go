package templates

// Column is one data grid column header.
type Column struct {
	Key     string
	Numeric bool
}

// SignClass returns the CSS class for a gain or loss figure.
func SignClass(value float64) string {
	if value < 0 {
		return "negative"
	}
	return "positive"
}

// TableStart opens a data grid with localized column headers.
func TableStart(hw *Writer, loc Localizer, id string, columns ...Column) {
	hw.Raw(`<div class="table-wrap"><table class="grid"`)
	if id != "" {
		hw.Attr("id", id)
	}
	hw.Raw("><thead><tr>")
	for _, col := range columns {
		if col.Numeric {
			hw.Raw(`<th scope="col" class="num">`)
		} else {
			hw.Raw(`<th scope="col">`)
		}
		hw.Text(T(loc, col.Key))
		hw.Raw("</th>")
	}
	hw.Raw("</tr></thead><tbody>")
}

// TableEnd closes a grid opened by TableStart.
func TableEnd(hw *Writer) {
	hw.Raw("</tbody></table></div>")
}

// Cell writes one escaped table cell. A non-empty class is applied as is.
func Cell(hw *Writer, class, text string) {
	hw.Raw("<td")
	if class != "" {
		hw.Attr("class", class)
	}
	hw.Raw(">")
	hw.Text(text)
	hw.Raw("</td>")
}
