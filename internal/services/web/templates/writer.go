package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates component HTML and keeps the first write error so
// render functions can write straight through and check once.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup.
func (hw *Writer) Raw(parts ...string) {
	for _, part := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, part)
	}
}

// Text writes escaped text content.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (hw *Writer) Attr(name, value string) {
	hw.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// BoolAttr writes ` name` when on is set.
func (hw *Writer) BoolAttr(name string, on bool) {
	if on {
		hw.Raw(" ", name)
	}
}

// Render writes a nested component.
func (hw *Writer) Render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Children renders the children carried by ctx.
func (hw *Writer) Children(ctx context.Context) {
	hw.Render(ctx, templ.GetChildren(ctx))
}

// Err returns the first write error.
func (hw *Writer) Err() error {
	return hw.err
}
